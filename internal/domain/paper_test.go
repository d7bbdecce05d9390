package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bondPaper(t *testing.T) Paper {
	t.Helper()
	return Paper{
		Name:   "OFZ 26238",
		Ticker: "SU26238RMFS4",
		FIGI:   "BBG0013J0LV4",
		Position: Position{
			Currency:               RUB,
			AverageBuyPrice:        MoneyFromValue(decimal.NewFromInt(10), RUB),
			CurrentInstrumentPrice: MoneyFromValue(decimal.NewFromInt(11), RUB),
			Quantity:               decimal.NewFromInt(100),
		},
		Totals: Totals{
			AdditionalProfit: MoneyFromValue(decimal.NewFromInt(100), RUB),
			Fees:             MoneyFromValue(decimal.NewFromInt(10), RUB),
		},
		ProfitKind: ProfitCoupon,
	}
}

func TestPositionDerivedValues(t *testing.T) {
	p := bondPaper(t).Position

	assert.True(t, p.Balance().Value.Equal(decimal.NewFromInt(1000)))
	assert.True(t, p.Current().Value.Equal(decimal.NewFromInt(1100)))
}

func TestPaperIncome(t *testing.T) {
	p := bondPaper(t)

	income := p.Income()

	assert.True(t, income.Delta().Equal(decimal.NewFromInt(100)))
	assert.True(t, income.Percent().Equal(decimal.NewFromInt(10)))
}

func TestPaperTotalIncome(t *testing.T) {
	p := bondPaper(t)

	total := p.TotalIncome()

	// 1100 market value plus 100 of coupons against a 1000 basis.
	assert.True(t, total.Current.Equal(decimal.NewFromInt(1200)))
	assert.True(t, total.Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, total.Percent().Equal(decimal.NewFromInt(20)))
}

func TestPaperProfitNoneHidesAdditionalProfit(t *testing.T) {
	p := bondPaper(t)
	p.ProfitKind = ProfitNone

	assert.True(t, p.Dividends().IsZero())
	assert.True(t, p.TotalIncome().Current.Equal(decimal.NewFromInt(1100)))
	// Fees still count even for instruments without an income category.
	assert.True(t, p.Fees().Value.Equal(decimal.NewFromInt(10)))
}

func TestParseInstrumentClass(t *testing.T) {
	for _, tc := range []struct {
		input   string
		want    InstrumentClass
		kind    ProfitKind
		wantErr bool
	}{
		{input: "bond", want: ClassBond, kind: ProfitCoupon},
		{input: "share", want: ClassShare, kind: ProfitDividend},
		{input: "etf", want: ClassEtf, kind: ProfitNone},
		{input: "currency", want: ClassCurrency, kind: ProfitNone},
		{input: "futures", want: ClassFutures, kind: ProfitNone},
		{input: "option", wantErr: true},
		{input: "", wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseInstrumentClass(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.kind, got.ProfitKind())
		})
	}
}
