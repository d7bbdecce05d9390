package render

import (
	"bytes"
	"fmt"

	"github.com/STTM-NSU/portfolio-report/internal/domain"
	md "github.com/nao1215/markdown"
)

const _totalIncome = "Total income"

// Markdown renders the report tree as markdown tables. With verbose set,
// asset sections include a table per paper above the group totals.
type Markdown struct {
	verbose bool
}

func NewMarkdown(verbose bool) *Markdown {
	return &Markdown{verbose: verbose}
}

func signedMoney(m domain.Money) string {
	if !m.IsZero() && !m.IsNegative() {
		return "+" + m.String()
	}
	return m.String()
}

func signedIncome(i domain.Income) string {
	if !i.IsZero() && !i.IsNegative() {
		return "+" + i.String()
	}
	return i.String()
}

func (r *Markdown) Portfolio(pf *domain.Portfolio) (string, error) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")

	for _, asset := range pf.Assets() {
		r.asset(doc, asset)
	}

	if err := r.portfolioTotals(doc, pf); err != nil {
		return "", err
	}

	return doc.String(), nil
}

func (r *Markdown) asset(doc *md.Markdown, a *domain.Asset) {
	doc.H2(a.Name)

	if r.verbose {
		for _, p := range a.Papers() {
			r.paper(doc, p)
		}
	}

	rows := [][]string{
		{"Balance value", a.Balance().String()},
		{"Current value", a.Current().String()},
		{"Balance income", signedIncome(a.Income())},
	}
	if a.ProfitKind != domain.ProfitNone {
		rows = append(rows,
			[]string{_totalIncome, signedIncome(a.TotalIncome())},
			[]string{a.ProfitKind.Label(), signedMoney(a.Dividends())},
		)
	}
	rows = append(rows,
		[]string{"Taxes and fees", signedMoney(a.Fees())},
		[]string{"Instruments count", fmt.Sprintf("%d", a.Len())},
	)

	doc.Table(md.TableSet{
		Header: []string{fmt.Sprintf("%s totals", a.Name), ""},
		Rows:   rows,
	})
}

func (r *Markdown) paper(doc *md.Markdown, p domain.Paper) {
	title := fmt.Sprintf("%s (%s | %s | %s)", p.Name, p.Ticker, p.FIGI, p.Currency())

	rows := [][]string{
		{"Average buy price", p.Position.AverageBuyPrice.String()},
		{"Last instrument price", p.Position.CurrentInstrumentPrice.String()},
		{"Current items count", p.Position.Quantity.Round(2).String()},
		{"Balance value", p.Balance().String()},
		{"Current value", p.Current().String()},
		{"Income", signedIncome(p.Income())},
	}
	if p.ProfitKind != domain.ProfitNone {
		rows = append(rows,
			[]string{p.ProfitKind.Label(), signedMoney(p.Dividends())},
			[]string{_totalIncome, signedIncome(p.TotalIncome())},
		)
	}
	rows = append(rows, []string{"Taxes and fees", signedMoney(p.Fees())})

	doc.Table(md.TableSet{
		Header: []string{title, ""},
		Rows:   rows,
	})
}

func (r *Markdown) portfolioTotals(doc *md.Markdown, pf *domain.Portfolio) error {
	balance, err := pf.Balance()
	if err != nil {
		return fmt.Errorf("%w: can't total balance", err)
	}
	current, err := pf.Current()
	if err != nil {
		return fmt.Errorf("%w: can't total current value", err)
	}
	income, err := pf.Income()
	if err != nil {
		return fmt.Errorf("%w: can't total income", err)
	}
	totalIncome, err := pf.TotalIncome()
	if err != nil {
		return fmt.Errorf("%w: can't total income", err)
	}
	dividends, err := pf.Dividends()
	if err != nil {
		return fmt.Errorf("%w: can't total dividends", err)
	}
	fees, err := pf.Fees()
	if err != nil {
		return fmt.Errorf("%w: can't total fees", err)
	}

	doc.H2("Portfolio totals")
	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{"Balance value", balance.String()},
			{"Current value", current.String()},
			{"Balance income", signedIncome(income)},
			{_totalIncome, signedIncome(totalIncome)},
			{"Dividends and coupons", signedMoney(dividends)},
			{"Taxes and fees", signedMoney(fees)},
			{"Instruments count", fmt.Sprintf("%d", pf.Len())},
		},
	})

	return nil
}

// History renders one instrument's transaction ledger.
func (r *Markdown) History(h *domain.History) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s | %s | %s)", h.Name, h.Ticker, h.FIGI, h.Currency))

	rows := make([][]string, 0, len(h.Items))
	for _, item := range h.Items {
		rows = append(rows, []string{
			item.Time.Format("2006-01-02 15:04:05"),
			item.Description,
			item.State,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%d", item.QuantityRest),
			item.Price.String(),
			signedMoney(item.Payment),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Date", "Operation", "State", "Quantity", "Rest", "Price", "Payment"},
		Rows:   rows,
	})

	doc.Table(md.TableSet{
		Header: []string{"Totals", ""},
		Rows: [][]string{
			{"Expenses", h.Expenses().String()},
			{"Profit", signedMoney(h.Profit())},
			{"Balance", signedMoney(h.Balance())},
		},
	})

	return doc.String()
}
