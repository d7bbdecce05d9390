package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Asset is an ordered group of papers of one profit kind. All papers in
// a group share one currency; AddPaper enforces it so the fold accessors
// stay total.
type Asset struct {
	Name       string
	ProfitKind ProfitKind

	papers []Paper
}

func NewAsset(name string, kind ProfitKind) *Asset {
	return &Asset{Name: name, ProfitKind: kind}
}

// AddPaper appends a paper; a currency differing from the group's anchor
// currency is rejected so totals never mislabel their currency.
func (a *Asset) AddPaper(p Paper) error {
	if len(a.papers) > 0 && p.Currency() != a.Currency() {
		return fmt.Errorf("%w: %s paper %s in %s group", ErrCurrencyMismatch, p.Currency(), p.Ticker, a.Currency())
	}
	a.papers = append(a.papers, p)
	return nil
}

func (a *Asset) Papers() []Paper { return a.papers }
func (a *Asset) Len() int        { return len(a.papers) }

// Currency of the group is taken from the first paper; an empty group
// reports in the baseline currency.
func (a *Asset) Currency() Currency {
	if len(a.papers) > 0 {
		return a.papers[0].Currency()
	}
	return RUB
}

func (a *Asset) fold(value func(Paper) decimal.Decimal) Money {
	total := decimal.Decimal{}
	for _, p := range a.papers {
		total = total.Add(value(p))
	}
	return MoneyFromValue(total, a.Currency())
}

func (a *Asset) Balance() Money {
	return a.fold(func(p Paper) decimal.Decimal { return p.Balance().Value })
}

func (a *Asset) Current() Money {
	return a.fold(func(p Paper) decimal.Decimal { return p.Current().Value })
}

func (a *Asset) Dividends() Money {
	return a.fold(func(p Paper) decimal.Decimal { return p.Dividends().Value })
}

func (a *Asset) Fees() Money {
	return a.fold(func(p Paper) decimal.Decimal { return p.Fees().Value })
}

func (a *Asset) Income() Income {
	return NewIncome(a.Current(), a.Balance())
}

// TotalIncome counts dividends or coupons as extra current value against
// the same cost basis.
func (a *Asset) TotalIncome() Income {
	income := a.Income()
	income.Current = income.Current.Add(a.Dividends().Value)
	return income
}
