package operation

import (
	"github.com/STTM-NSU/portfolio-report/internal/domain"
	"github.com/STTM-NSU/portfolio-report/internal/tools"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
)

// Reduce folds an instrument's operations into its Totals. Both
// accumulators start at zero in the requested currency, so the result is
// order-independent. Operations without a parseable payment are skipped;
// the count of skips is returned for the caller to log.
func Reduce(operations []*investapi.Operation, currency domain.Currency) (domain.Totals, int) {
	var (
		additionalProfit = domain.Zero(currency)
		fees             = domain.Zero(currency)
		skipped          int
	)

	for _, op := range operations {
		payment, ok := tools.MoneyValueToMoney(op.GetPayment())
		if !ok {
			skipped++
			continue
		}

		switch Classify(op.GetOperationType()) {
		case PureIncome:
			additionalProfit.Value = additionalProfit.Value.Add(payment.Value)
		case Fee:
			fees.Value = fees.Value.Add(payment.Value)
		case Unspecified:
		}
	}

	return domain.Totals{
		AdditionalProfit: additionalProfit,
		Fees:             fees,
	}, skipped
}
