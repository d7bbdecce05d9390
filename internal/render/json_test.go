package render

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioJSON(t *testing.T) {
	out, err := PortfolioJSON(testPortfolio(t))
	require.NoError(t, err)

	var report portfolioJSON
	require.NoError(t, sonic.Unmarshal(out, &report))

	assert.Len(t, report.Assets, 5)
	assert.Equal(t, "2000", report.Balance.Value)
	assert.Equal(t, "2200", report.Current.Value)
	assert.Equal(t, "RUB", report.Balance.Currency)
	// Only the bond contributes dividends; the etf's payments are hidden.
	assert.Equal(t, "100", report.Dividends.Value)
	assert.Equal(t, "10", report.Income.Percent)
}
