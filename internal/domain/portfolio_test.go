package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioAggregation(t *testing.T) {
	pf := NewPortfolio()
	require.NoError(t, pf.Bonds.AddPaper(testPaper(t, "B1", 10, 11, 100, 100, ProfitCoupon, RUB)))
	require.NoError(t, pf.Shares.AddPaper(testPaper(t, "S1", 5, 6, 100, 50, ProfitDividend, RUB)))

	balance, err := pf.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Value.Equal(decimal.NewFromInt(1500)))

	current, err := pf.Current()
	require.NoError(t, err)
	assert.True(t, current.Value.Equal(decimal.NewFromInt(1700)))

	dividends, err := pf.Dividends()
	require.NoError(t, err)
	assert.True(t, dividends.Value.Equal(decimal.NewFromInt(150)))

	income, err := pf.Income()
	require.NoError(t, err)
	assert.True(t, income.Percent().Round(2).Equal(decimal.RequireFromString("13.33")))

	totalIncome, err := pf.TotalIncome()
	require.NoError(t, err)
	assert.True(t, totalIncome.Current.Equal(decimal.NewFromInt(1850)))

	assert.Equal(t, 2, pf.Len())
}

func TestEmptyPortfolio(t *testing.T) {
	pf := NewPortfolio()

	balance, err := pf.Balance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assert.Equal(t, RUB, balance.Currency)

	income, err := pf.Income()
	require.NoError(t, err)
	assert.True(t, income.Percent().IsZero())
}

func TestPortfolioMismatchedAssetCurrencies(t *testing.T) {
	pf := NewPortfolio()
	require.NoError(t, pf.Bonds.AddPaper(testPaper(t, "B1", 10, 11, 100, 0, ProfitCoupon, RUB)))
	require.NoError(t, pf.Shares.AddPaper(testPaper(t, "S1", 5, 6, 100, 0, ProfitDividend, "USD")))

	_, err := pf.Balance()

	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestPortfolioAssetSelection(t *testing.T) {
	pf := NewPortfolio()

	assert.Same(t, pf.Bonds, pf.Asset(ClassBond))
	assert.Same(t, pf.Shares, pf.Asset(ClassShare))
	assert.Same(t, pf.Etfs, pf.Asset(ClassEtf))
	assert.Same(t, pf.Currencies, pf.Asset(ClassCurrency))
	assert.Same(t, pf.Futures, pf.Asset(ClassFutures))
	assert.Nil(t, pf.Asset("option"))
}
