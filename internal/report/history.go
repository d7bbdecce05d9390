package report

import (
	"context"
	"fmt"

	"github.com/STTM-NSU/portfolio-report/internal/domain"
	"github.com/STTM-NSU/portfolio-report/internal/tools"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
)

// History builds the transaction ledger for one instrument, resolved by
// ticker. Returns nil when the instrument has no operations to report.
func (b *Builder) History(ctx context.Context, accountID, ticker string) (*domain.History, error) {
	instr, err := b.instrumentsService.FindByTicker(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: can't resolve ticker %s", err, ticker)
	}

	ops, err := b.operationsService.GetExecutedOperations(ctx, accountID, instr.FIGI)
	if err != nil {
		return nil, fmt.Errorf("%w: can't load operations for %s", err, ticker)
	}

	items := make([]domain.HistoryItem, 0, len(ops))
	for _, op := range ops {
		items = append(items, newHistoryItem(op))
	}

	return domain.NewHistory(instr.Name, instr.Ticker, instr.FIGI, items), nil
}

func newHistoryItem(op *investapi.Operation) domain.HistoryItem {
	currency, err := domain.ParseCurrency(op.GetCurrency())
	if err != nil {
		currency = domain.RUB
	}

	payment, ok := tools.MoneyValueToMoney(op.GetPayment())
	if !ok {
		payment = domain.Zero(currency)
	}
	price, ok := tools.MoneyValueToMoney(op.GetPrice())
	if !ok {
		price = domain.Zero(currency)
	}

	return domain.HistoryItem{
		ID:           op.GetId(),
		Time:         tools.TimestampToUTC(op.GetDate()),
		Quantity:     op.GetQuantity(),
		QuantityRest: op.GetQuantityRest(),
		Price:        price,
		Payment:      payment,
		Description:  op.GetType(),
		State:        stateLabel(op.GetState()),
	}
}

func stateLabel(s investapi.OperationState) string {
	switch s {
	case investapi.OperationState_OPERATION_STATE_EXECUTED:
		return "Executed"
	case investapi.OperationState_OPERATION_STATE_CANCELED:
		return "Canceled"
	case investapi.OperationState_OPERATION_STATE_PROGRESS:
		return "In progress"
	default:
		return "Not specified"
	}
}
