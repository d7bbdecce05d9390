package render

import (
	"testing"
	"time"

	"github.com/STTM-NSU/portfolio-report/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPortfolio(t *testing.T) *domain.Portfolio {
	t.Helper()
	pf := domain.NewPortfolio()

	bond := domain.Paper{
		Name:   "OFZ 26238",
		Ticker: "SU26238RMFS4",
		FIGI:   "BBG0013J0LV4",
		Position: domain.Position{
			Currency:               domain.RUB,
			AverageBuyPrice:        domain.MoneyFromValue(decimal.NewFromInt(10), domain.RUB),
			CurrentInstrumentPrice: domain.MoneyFromValue(decimal.NewFromInt(11), domain.RUB),
			Quantity:               decimal.NewFromInt(100),
		},
		Totals: domain.Totals{
			AdditionalProfit: domain.MoneyFromValue(decimal.NewFromInt(100), domain.RUB),
			Fees:             domain.MoneyFromValue(decimal.NewFromInt(-10), domain.RUB),
		},
		ProfitKind: domain.ProfitCoupon,
	}
	require.NoError(t, pf.Bonds.AddPaper(bond))

	etf := bond
	etf.Name, etf.Ticker, etf.ProfitKind = "TMOS", "TMOS", domain.ProfitNone
	require.NoError(t, pf.Etfs.AddPaper(etf))

	return pf
}

func TestMarkdownPortfolio(t *testing.T) {
	out, err := NewMarkdown(true).Portfolio(testPortfolio(t))

	require.NoError(t, err)
	assert.Contains(t, out, "# Portfolio")
	assert.Contains(t, out, "## Bonds")
	assert.Contains(t, out, "OFZ 26238 (SU26238RMFS4 | BBG0013J0LV4 | RUB)")
	assert.Contains(t, out, "Coupons")
	assert.Contains(t, out, "## Portfolio totals")
	assert.Contains(t, out, "Instruments count")
}

func TestMarkdownPortfolioNonVerboseSkipsPapers(t *testing.T) {
	out, err := NewMarkdown(false).Portfolio(testPortfolio(t))

	require.NoError(t, err)
	assert.NotContains(t, out, "Average buy price")
	assert.Contains(t, out, "Bonds totals")
}

func TestMarkdownProfitNoneAssetHasNoIncomeRows(t *testing.T) {
	pf := domain.NewPortfolio()
	etf := domain.Paper{
		Name:   "TMOS",
		Ticker: "TMOS",
		Position: domain.Position{
			Currency:               domain.RUB,
			AverageBuyPrice:        domain.MoneyFromValue(decimal.NewFromInt(5), domain.RUB),
			CurrentInstrumentPrice: domain.MoneyFromValue(decimal.NewFromInt(6), domain.RUB),
			Quantity:               decimal.NewFromInt(10),
		},
		ProfitKind: domain.ProfitNone,
	}
	require.NoError(t, pf.Etfs.AddPaper(etf))

	out, err := NewMarkdown(true).Portfolio(pf)

	require.NoError(t, err)
	assert.NotContains(t, out, "Dividends |")
	assert.NotContains(t, out, "Coupons")
}

func TestMarkdownHistory(t *testing.T) {
	h := domain.NewHistory("OFZ 26238", "SU26238RMFS4", "BBG0013J0LV4", []domain.HistoryItem{
		{
			ID:          "1",
			Time:        time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC),
			Quantity:    10,
			Price:       domain.MoneyFromValue(decimal.NewFromInt(100), domain.RUB),
			Payment:     domain.MoneyFromValue(decimal.NewFromInt(-1000), domain.RUB),
			Description: "Покупка ценных бумаг",
			State:       "Executed",
		},
	})
	require.NotNil(t, h)

	out := NewMarkdown(true).History(h)

	assert.Contains(t, out, "OFZ 26238 (SU26238RMFS4 | BBG0013J0LV4 | RUB)")
	assert.Contains(t, out, "2024-03-01 10:30:00")
	assert.Contains(t, out, "Expenses")
}
