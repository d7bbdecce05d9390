package tools

import (
	"time"

	"github.com/STTM-NSU/portfolio-report/internal/domain"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// QuotationToDecimal converts the broker's units+nano pair exactly,
// without a float round trip. A nil quotation is zero.
func QuotationToDecimal(q *investapi.Quotation) decimal.Decimal {
	if q == nil {
		return decimal.Decimal{}
	}
	return decimal.New(q.GetUnits(), 0).Add(decimal.New(int64(q.GetNano()), -9))
}

// MoneyValueToDecimal is QuotationToDecimal for priced amounts.
func MoneyValueToDecimal(mv *investapi.MoneyValue) decimal.Decimal {
	if mv == nil {
		return decimal.Decimal{}
	}
	return decimal.New(mv.GetUnits(), 0).Add(decimal.New(int64(mv.GetNano()), -9))
}

// MoneyValueToMoney converts an optional broker amount. ok is false when
// the value is absent or its currency code does not resolve.
func MoneyValueToMoney(mv *investapi.MoneyValue) (domain.Money, bool) {
	if mv == nil {
		return domain.Money{}, false
	}
	m, err := domain.NewMoney(MoneyValueToDecimal(mv), mv.GetCurrency())
	if err != nil {
		return domain.Money{}, false
	}
	return m, true
}

// TimestampToUTC converts an optional proto timestamp; absent is the zero time.
func TimestampToUTC(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime().UTC()
}
