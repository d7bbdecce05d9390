package position

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/STTM-NSU/portfolio-report/internal/domain"
	"github.com/STTM-NSU/portfolio-report/internal/invest/backoff"
	"github.com/STTM-NSU/portfolio-report/internal/logger"
	"github.com/STTM-NSU/portfolio-report/internal/tools"
	"github.com/russianinvestments/invest-api-go-sdk/investgo"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
	"go.uber.org/ratelimit"
)

var (
	NoAveragePriceError = errors.New("position has no average price")
	NoCurrentPriceError = errors.New("position has no current price")
)

type PortfolioService struct {
	opsClient   *investgo.OperationsServiceClient
	rateLimiter ratelimit.Limiter // 200 T/M
	retry       backoff.Config
	logger      logger.Logger
}

func NewPortfolioService(c *investgo.Client, retry backoff.Config, logger logger.Logger) *PortfolioService {
	retry.Setup()
	return &PortfolioService{
		opsClient:   c.NewOperationsServiceClient(),
		rateLimiter: ratelimit.New(200, ratelimit.Per(1*time.Minute)),
		retry:       retry,
		logger:      logger,
	}
}

// GetPositions fetches the account's portfolio snapshot.
func (s *PortfolioService) GetPositions(ctx context.Context, accountID string) ([]*investapi.PortfolioPosition, error) {
	return backoff.Retry(ctx, s.retry, func() ([]*investapi.PortfolioPosition, error) {
		s.rateLimiter.Take()
		resp, err := s.opsClient.GetPortfolio(accountID, investapi.PortfolioRequest_RUB)
		if err != nil {
			return nil, fmt.Errorf("%w: can't get portfolio", err)
		}
		return resp.GetPositions(), nil
	})
}

// NewPosition builds the immutable domain position from one raw snapshot
// entry. It fails when either price is absent or the currency code does
// not resolve; callers skip such positions and keep the run going.
func NewPosition(p *investapi.PortfolioPosition) (domain.Position, error) {
	averageBuyPrice, ok := tools.MoneyValueToMoney(p.GetAveragePositionPrice())
	if !ok {
		return domain.Position{}, fmt.Errorf("%w: figi=%s", NoAveragePriceError, p.GetFigi())
	}

	currentPrice, ok := tools.MoneyValueToMoney(p.GetCurrentPrice())
	if !ok {
		return domain.Position{}, fmt.Errorf("%w: figi=%s", NoCurrentPriceError, p.GetFigi())
	}

	return domain.Position{
		Currency:               currentPrice.Currency,
		AverageBuyPrice:        averageBuyPrice,
		CurrentInstrumentPrice: currentPrice,
		Quantity:               tools.QuotationToDecimal(p.GetQuantity()),
	}, nil
}
