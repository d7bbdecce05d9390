package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomePercent(t *testing.T) {
	income := NewIncome(
		MoneyFromValue(decimal.NewFromInt(1100), RUB),
		MoneyFromValue(decimal.NewFromInt(1000), RUB),
	)

	assert.True(t, income.Delta().Equal(decimal.NewFromInt(100)))
	assert.True(t, income.Percent().Equal(decimal.NewFromInt(10)))
}

func TestIncomePercentZeroBalance(t *testing.T) {
	income := NewIncome(
		MoneyFromValue(decimal.NewFromInt(100), RUB),
		Zero(RUB),
	)

	assert.True(t, income.Percent().IsZero())
}

func TestIncomeAdd(t *testing.T) {
	a := Income{Currency: RUB, Current: decimal.NewFromInt(1100), Balance: decimal.NewFromInt(1000)}
	b := Income{Currency: RUB, Current: decimal.NewFromInt(600), Balance: decimal.NewFromInt(500)}

	sum, err := a.Add(b)

	require.NoError(t, err)
	assert.True(t, sum.Current.Equal(decimal.NewFromInt(1700)))
	assert.True(t, sum.Balance.Equal(decimal.NewFromInt(1500)))
}

func TestIncomeAddCurrencyMismatch(t *testing.T) {
	a := ZeroIncome(RUB)
	b := ZeroIncome("USD")

	_, err := a.Add(b)

	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestIncomeNegative(t *testing.T) {
	income := NewIncome(
		MoneyFromValue(decimal.NewFromInt(900), RUB),
		MoneyFromValue(decimal.NewFromInt(1000), RUB),
	)

	assert.True(t, income.IsNegative())
	assert.True(t, income.Percent().Equal(decimal.NewFromInt(-10)))
}
