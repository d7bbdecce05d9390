package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProfitKind tells which extra income category an instrument class has
// and whether the additional-profit lines are reported at all.
type ProfitKind int

const (
	ProfitNone ProfitKind = iota
	ProfitDividend
	ProfitCoupon
)

// Label is the display name of the additional-profit line.
func (k ProfitKind) Label() string {
	switch k {
	case ProfitDividend:
		return "Dividends"
	case ProfitCoupon:
		return "Coupons"
	default:
		return ""
	}
}

// InstrumentClass is the closed set of reportable asset classes.
type InstrumentClass string

const (
	ClassBond     InstrumentClass = "bond"
	ClassShare    InstrumentClass = "share"
	ClassEtf      InstrumentClass = "etf"
	ClassCurrency InstrumentClass = "currency"
	ClassFutures  InstrumentClass = "futures"
)

// ParseInstrumentClass maps the broker's open instrument-type string.
func ParseInstrumentClass(s string) (InstrumentClass, error) {
	switch InstrumentClass(s) {
	case ClassBond, ClassShare, ClassEtf, ClassCurrency, ClassFutures:
		return InstrumentClass(s), nil
	}
	return "", fmt.Errorf("unknown instrument class %q", s)
}

func (c InstrumentClass) ProfitKind() ProfitKind {
	switch c {
	case ClassBond:
		return ProfitCoupon
	case ClassShare:
		return ProfitDividend
	default:
		return ProfitNone
	}
}

// Totals is the reduction of an instrument's operation history:
// dividend/coupon payments net of their taxes, and broker fees.
type Totals struct {
	AdditionalProfit Money
	Fees             Money
}

// Position is a read-only snapshot of one held instrument.
type Position struct {
	Currency               Currency
	AverageBuyPrice        Money
	CurrentInstrumentPrice Money
	Quantity               decimal.Decimal
}

// Balance is the cost basis: average buy price times quantity.
func (p Position) Balance() Money {
	return p.AverageBuyPrice.MulQuantity(p.Quantity)
}

// Current is the mark-to-market value: current price times quantity.
func (p Position) Current() Money {
	return p.CurrentInstrumentPrice.MulQuantity(p.Quantity)
}

// Paper is one reportable instrument line.
type Paper struct {
	Name   string
	Ticker string
	FIGI   string

	Position   Position
	Totals     Totals
	ProfitKind ProfitKind
}

func (p Paper) Currency() Currency { return p.Position.Currency }
func (p Paper) Balance() Money     { return p.Position.Balance() }
func (p Paper) Current() Money     { return p.Position.Current() }
func (p Paper) Fees() Money        { return p.Totals.Fees }

// Dividends is the net additional profit; zero for ProfitNone papers
// even when the reducer found payments for them.
func (p Paper) Dividends() Money {
	if p.ProfitKind == ProfitNone {
		return Zero(p.Currency())
	}
	return p.Totals.AdditionalProfit
}

func (p Paper) Income() Income {
	return NewIncome(p.Current(), p.Balance())
}

// TotalIncome adds the dividend/coupon payments on top of the
// mark-to-market income, relative to the same cost basis.
func (p Paper) TotalIncome() Income {
	income := p.Income()
	income.Current = income.Current.Add(p.Dividends().Value)
	return income
}
