package domain

import (
	"sort"
	"time"
)

// HistoryItem is one executed (or pending) operation in an instrument's
// transaction ledger.
type HistoryItem struct {
	ID           string
	Time         time.Time
	Quantity     int64
	QuantityRest int64
	Price        Money
	Payment      Money
	Description  string
	State        string
}

// History is the chronological transaction ledger for one instrument.
type History struct {
	Name     string
	Ticker   string
	FIGI     string
	Currency Currency
	Items    []HistoryItem
}

// NewHistory deduplicates items by operation id (first occurrence wins),
// sorts ascending by time, and anchors the ledger on the first item's
// payment currency. Returns nil when there is nothing to report.
func NewHistory(name, ticker, figi string, items []HistoryItem) *History {
	seen := make(map[string]struct{}, len(items))
	unique := make([]HistoryItem, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		unique = append(unique, item)
	}

	if len(unique) == 0 {
		return nil
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Time.Before(unique[j].Time)
	})

	return &History{
		Name:     name,
		Ticker:   ticker,
		FIGI:     figi,
		Currency: unique[0].Payment.Currency,
		Items:    unique,
	}
}

// Expenses sums the negative payments.
func (h *History) Expenses() Money {
	total := Zero(h.Currency)
	for _, item := range h.Items {
		if item.Payment.IsNegative() {
			total.Value = total.Value.Add(item.Payment.Value)
		}
	}
	return total
}

// Profit sums the non-negative payments.
func (h *History) Profit() Money {
	total := Zero(h.Currency)
	for _, item := range h.Items {
		if !item.Payment.IsNegative() {
			total.Value = total.Value.Add(item.Payment.Value)
		}
	}
	return total
}

// Balance is the net of all payments.
func (h *History) Balance() Money {
	total := Zero(h.Currency)
	total.Value = h.Expenses().Value.Add(h.Profit().Value)
	return total
}
