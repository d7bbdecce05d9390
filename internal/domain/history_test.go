package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyItem(id string, at time.Time, payment int64) HistoryItem {
	return HistoryItem{
		ID:      id,
		Time:    at,
		Payment: MoneyFromValue(decimal.NewFromInt(payment), RUB),
		Price:   Zero(RUB),
	}
}

func TestNewHistoryDeduplicatesAndSorts(t *testing.T) {
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	h := NewHistory("OFZ", "SU26238RMFS4", "BBG0013J0LV4", []HistoryItem{
		historyItem("2", base.Add(time.Hour), 100),
		historyItem("1", base, -1000),
		historyItem("1", base, -1000),
	})

	require.NotNil(t, h)
	require.Len(t, h.Items, 2)
	assert.Equal(t, "1", h.Items[0].ID)
	assert.Equal(t, "2", h.Items[1].ID)
	assert.Equal(t, RUB, h.Currency)
}

func TestNewHistoryEmpty(t *testing.T) {
	assert.Nil(t, NewHistory("OFZ", "SU26238RMFS4", "BBG0013J0LV4", nil))
}

func TestHistoryRollups(t *testing.T) {
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	h := NewHistory("OFZ", "SU26238RMFS4", "BBG0013J0LV4", []HistoryItem{
		historyItem("1", base, -1000),
		historyItem("2", base.AddDate(0, 0, 1), 40),
		historyItem("3", base.AddDate(0, 0, 2), 1100),
		historyItem("4", base.AddDate(0, 0, 3), -7),
	})

	require.NotNil(t, h)
	assert.True(t, h.Expenses().Value.Equal(decimal.NewFromInt(-1007)))
	assert.True(t, h.Profit().Value.Equal(decimal.NewFromInt(1140)))
	assert.True(t, h.Balance().Value.Equal(decimal.NewFromInt(133)))
}
