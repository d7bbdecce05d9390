package domain

import (
	"errors"
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCurrency  = errors.New("unknown currency code")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Currency is an upper-case ISO 4217 alpha code.
type Currency string

const RUB Currency = "RUB"

// ParseCurrency resolves a case-insensitive code against the ISO 4217 table.
func ParseCurrency(code string) (Currency, error) {
	upper := strings.ToUpper(code)
	if gomoney.GetCurrency(upper) == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return Currency(upper), nil
}

// Symbol returns the currency grapheme, falling back to the code itself.
func (c Currency) Symbol() string {
	if cur := gomoney.GetCurrency(string(c)); cur != nil && cur.Grapheme != "" {
		return cur.Grapheme
	}
	return string(c)
}

// Money is an immutable (decimal value, currency) pair.
type Money struct {
	Value    decimal.Decimal
	Currency Currency
}

// NewMoney builds Money from a raw broker currency code.
func NewMoney(value decimal.Decimal, code string) (Money, error) {
	currency, err := ParseCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return Money{Value: value, Currency: currency}, nil
}

func MoneyFromValue(value decimal.Decimal, currency Currency) Money {
	return Money{Value: value, Currency: currency}
}

func Zero(currency Currency) Money {
	return Money{Value: decimal.Decimal{}, Currency: currency}
}

// Add fails on mismatched currencies instead of mislabeling the sum.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Value: m.Value.Add(other.Value), Currency: m.Currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Value: m.Value.Sub(other.Value), Currency: m.Currency}, nil
}

// MulQuantity scales the amount by a dimensionless quantity.
func (m Money) MulQuantity(quantity decimal.Decimal) Money {
	return Money{Value: m.Value.Mul(quantity), Currency: m.Currency}
}

func (m Money) IsZero() bool     { return m.Value.IsZero() }
func (m Money) IsNegative() bool { return m.Value.IsNegative() }

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Value.Round(2), m.Currency.Symbol())
}
