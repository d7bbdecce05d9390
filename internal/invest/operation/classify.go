package operation

import (
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
)

// Influence is the bucket an operation's payment lands in when reducing
// an instrument's history.
type Influence int

const (
	// Unspecified operations (buys, sells, transfers) are excluded from
	// both totals.
	Unspecified Influence = iota
	// PureIncome covers dividend and coupon payouts together with the
	// taxes withheld on them, so the reduced figure is post-tax income.
	PureIncome
	// Fee covers pure costs that never net against income.
	Fee
)

// Classify maps every known operation-type code to exactly one bucket.
// The mapping is fixed data, not configuration.
func Classify(op investapi.OperationType) Influence {
	switch op {
	case investapi.OperationType_OPERATION_TYPE_DIVIDEND,
		investapi.OperationType_OPERATION_TYPE_DIVIDEND_TAX,
		investapi.OperationType_OPERATION_TYPE_DIVIDEND_TAX_PROGRESSIVE,
		investapi.OperationType_OPERATION_TYPE_BOND_TAX,
		investapi.OperationType_OPERATION_TYPE_BOND_TAX_PROGRESSIVE,
		investapi.OperationType_OPERATION_TYPE_COUPON,
		investapi.OperationType_OPERATION_TYPE_BENEFIT_TAX,
		investapi.OperationType_OPERATION_TYPE_BENEFIT_TAX_PROGRESSIVE,
		investapi.OperationType_OPERATION_TYPE_OVERNIGHT,
		investapi.OperationType_OPERATION_TYPE_TAX:
		return PureIncome
	case investapi.OperationType_OPERATION_TYPE_SERVICE_FEE,
		investapi.OperationType_OPERATION_TYPE_MARGIN_FEE,
		investapi.OperationType_OPERATION_TYPE_BROKER_FEE,
		investapi.OperationType_OPERATION_TYPE_SUCCESS_FEE,
		investapi.OperationType_OPERATION_TYPE_TRACK_MFEE,
		investapi.OperationType_OPERATION_TYPE_TRACK_PFEE,
		investapi.OperationType_OPERATION_TYPE_CASH_FEE,
		investapi.OperationType_OPERATION_TYPE_OUT_FEE,
		investapi.OperationType_OPERATION_TYPE_OUT_STAMP_DUTY,
		investapi.OperationType_OPERATION_TYPE_ADVICE_FEE,
		investapi.OperationType_OPERATION_TYPE_OUTPUT_PENALTY:
		return Fee
	default:
		return Unspecified
	}
}
