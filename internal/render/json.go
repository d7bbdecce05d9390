package render

import (
	"fmt"

	"github.com/STTM-NSU/portfolio-report/internal/domain"
	"github.com/bytedance/sonic"
)

type moneyJSON struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type incomeJSON struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
	Percent  string `json:"percent"`
}

type paperJSON struct {
	Name             string     `json:"name"`
	Ticker           string     `json:"ticker"`
	FIGI             string     `json:"figi"`
	Quantity         string     `json:"quantity"`
	AverageBuyPrice  moneyJSON  `json:"average_buy_price"`
	CurrentPrice     moneyJSON  `json:"current_price"`
	Balance          moneyJSON  `json:"balance"`
	Current          moneyJSON  `json:"current"`
	Income           incomeJSON `json:"income"`
	TotalIncome      incomeJSON `json:"total_income"`
	AdditionalProfit moneyJSON  `json:"additional_profit"`
	Fees             moneyJSON  `json:"fees"`
}

type assetJSON struct {
	Name        string      `json:"name"`
	Papers      []paperJSON `json:"papers"`
	Balance     moneyJSON   `json:"balance"`
	Current     moneyJSON   `json:"current"`
	Income      incomeJSON  `json:"income"`
	TotalIncome incomeJSON  `json:"total_income"`
	Dividends   moneyJSON   `json:"dividends"`
	Fees        moneyJSON   `json:"fees"`
}

type portfolioJSON struct {
	Assets      []assetJSON `json:"assets"`
	Balance     moneyJSON   `json:"balance"`
	Current     moneyJSON   `json:"current"`
	Income      incomeJSON  `json:"income"`
	TotalIncome incomeJSON  `json:"total_income"`
	Dividends   moneyJSON   `json:"dividends"`
	Fees        moneyJSON   `json:"fees"`
}

func toMoneyJSON(m domain.Money) moneyJSON {
	return moneyJSON{Value: m.Value.String(), Currency: string(m.Currency)}
}

func toIncomeJSON(i domain.Income) incomeJSON {
	return incomeJSON{
		Value:    i.Delta().String(),
		Currency: string(i.Currency),
		Percent:  i.Percent().Round(2).String(),
	}
}

func toPaperJSON(p domain.Paper) paperJSON {
	return paperJSON{
		Name:             p.Name,
		Ticker:           p.Ticker,
		FIGI:             p.FIGI,
		Quantity:         p.Position.Quantity.String(),
		AverageBuyPrice:  toMoneyJSON(p.Position.AverageBuyPrice),
		CurrentPrice:     toMoneyJSON(p.Position.CurrentInstrumentPrice),
		Balance:          toMoneyJSON(p.Balance()),
		Current:          toMoneyJSON(p.Current()),
		Income:           toIncomeJSON(p.Income()),
		TotalIncome:      toIncomeJSON(p.TotalIncome()),
		AdditionalProfit: toMoneyJSON(p.Dividends()),
		Fees:             toMoneyJSON(p.Fees()),
	}
}

func toAssetJSON(a *domain.Asset) assetJSON {
	papers := make([]paperJSON, 0, a.Len())
	for _, p := range a.Papers() {
		papers = append(papers, toPaperJSON(p))
	}
	return assetJSON{
		Name:        a.Name,
		Papers:      papers,
		Balance:     toMoneyJSON(a.Balance()),
		Current:     toMoneyJSON(a.Current()),
		Income:      toIncomeJSON(a.Income()),
		TotalIncome: toIncomeJSON(a.TotalIncome()),
		Dividends:   toMoneyJSON(a.Dividends()),
		Fees:        toMoneyJSON(a.Fees()),
	}
}

// PortfolioJSON marshals the whole report tree for machine consumers.
func PortfolioJSON(pf *domain.Portfolio) ([]byte, error) {
	balance, err := pf.Balance()
	if err != nil {
		return nil, fmt.Errorf("%w: can't total balance", err)
	}
	current, err := pf.Current()
	if err != nil {
		return nil, fmt.Errorf("%w: can't total current value", err)
	}
	income, err := pf.Income()
	if err != nil {
		return nil, fmt.Errorf("%w: can't total income", err)
	}
	totalIncome, err := pf.TotalIncome()
	if err != nil {
		return nil, fmt.Errorf("%w: can't total income", err)
	}
	dividends, err := pf.Dividends()
	if err != nil {
		return nil, fmt.Errorf("%w: can't total dividends", err)
	}
	fees, err := pf.Fees()
	if err != nil {
		return nil, fmt.Errorf("%w: can't total fees", err)
	}

	assets := make([]assetJSON, 0, len(pf.Assets()))
	for _, a := range pf.Assets() {
		assets = append(assets, toAssetJSON(a))
	}

	return sonic.MarshalIndent(portfolioJSON{
		Assets:      assets,
		Balance:     toMoneyJSON(balance),
		Current:     toMoneyJSON(current),
		Income:      toIncomeJSON(income),
		TotalIncome: toIncomeJSON(totalIncome),
		Dividends:   toMoneyJSON(dividends),
		Fees:        toMoneyJSON(fees),
	}, "", "  ")
}
