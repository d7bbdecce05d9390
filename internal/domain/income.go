package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Income is a mark-to-market return: current value against cost basis.
type Income struct {
	Currency Currency
	Current  decimal.Decimal
	Balance  decimal.Decimal
}

// NewIncome takes its currency from the current value.
func NewIncome(current, balance Money) Income {
	return Income{
		Currency: current.Currency,
		Current:  current.Value,
		Balance:  balance.Value,
	}
}

func ZeroIncome(currency Currency) Income {
	return Income{Currency: currency}
}

// Add sums component-wise; mismatched currencies are an error.
func (i Income) Add(other Income) (Income, error) {
	if i.Currency != other.Currency {
		return Income{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, i.Currency, other.Currency)
	}
	return Income{
		Currency: i.Currency,
		Current:  i.Current.Add(other.Current),
		Balance:  i.Balance.Add(other.Balance),
	}, nil
}

// Delta is the signed gain or loss.
func (i Income) Delta() decimal.Decimal {
	return i.Current.Sub(i.Balance)
}

// Percent is the gain relative to the cost basis, in percent.
// A zero balance yields exactly zero, not a division error.
func (i Income) Percent() decimal.Decimal {
	if i.Balance.IsZero() {
		return decimal.Decimal{}
	}
	return i.Delta().Div(i.Balance).Mul(hundred)
}

func (i Income) IsZero() bool     { return i.Delta().IsZero() }
func (i Income) IsNegative() bool { return i.Delta().IsNegative() }

func (i Income) String() string {
	return fmt.Sprintf("%s %s (%s%%)", i.Delta().Round(2), i.Currency.Symbol(), i.Percent().Round(2))
}
