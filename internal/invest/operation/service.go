package operation

import (
	"context"
	"fmt"
	"time"

	"github.com/STTM-NSU/portfolio-report/internal/invest/backoff"
	"github.com/STTM-NSU/portfolio-report/internal/logger"
	"github.com/russianinvestments/invest-api-go-sdk/investgo"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
	"go.uber.org/ratelimit"
)

type OperationsService struct {
	opsClient   *investgo.OperationsServiceClient
	rateLimiter ratelimit.Limiter // 200 T/M
	retry       backoff.Config
	logger      logger.Logger
}

func NewOperationsService(c *investgo.Client, retry backoff.Config, logger logger.Logger) *OperationsService {
	retry.Setup()
	return &OperationsService{
		opsClient:   c.NewOperationsServiceClient(),
		rateLimiter: ratelimit.New(200, ratelimit.Per(1*time.Minute)),
		retry:       retry,
		logger:      logger,
	}
}

// GetExecutedOperations fetches the full executed-operation history for
// one instrument on the account, retrying transient failures with
// bounded backoff.
func (s *OperationsService) GetExecutedOperations(ctx context.Context, accountID, figi string) ([]*investapi.Operation, error) {
	return backoff.Retry(ctx, s.retry, func() ([]*investapi.Operation, error) {
		s.rateLimiter.Take()
		resp, err := s.opsClient.GetOperations(&investgo.GetOperationsRequest{
			AccountId: accountID,
			Figi:      figi,
			State:     investapi.OperationState_OPERATION_STATE_EXECUTED,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: can't get operations for figi=%s", err, figi)
		}
		return resp.GetOperations(), nil
	})
}
