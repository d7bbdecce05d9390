package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/STTM-NSU/portfolio-report/internal/invest/backoff"
	"github.com/STTM-NSU/portfolio-report/internal/logger"
	"github.com/russianinvestments/invest-api-go-sdk/investgo"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
	"go.uber.org/ratelimit"
)

var NoAccountsError = errors.New("no accounts available")

type AccountsService struct {
	usersClient *investgo.UsersServiceClient
	rateLimiter ratelimit.Limiter // 100 T/M
	retry       backoff.Config
	logger      logger.Logger
}

func NewAccountsService(c *investgo.Client, retry backoff.Config, logger logger.Logger) *AccountsService {
	retry.Setup()
	return &AccountsService{
		usersClient: c.NewUsersServiceClient(),
		rateLimiter: ratelimit.New(100, ratelimit.Per(1*time.Minute)),
		retry:       retry,
		logger:      logger,
	}
}

// Get returns the account of the requested type, falling back to the
// first account when none matches.
func (s *AccountsService) Get(ctx context.Context, accountType investapi.AccountType) (*investapi.Account, error) {
	resp, err := backoff.Retry(ctx, s.retry, func() (*investgo.GetAccountsResponse, error) {
		s.rateLimiter.Take()
		return s.usersClient.GetAccounts(investapi.AccountStatus_ACCOUNT_STATUS_OPEN.Enum())
	})
	if err != nil {
		return nil, fmt.Errorf("%w: can't get accounts", err)
	}

	accounts := resp.GetAccounts()
	if len(accounts) == 0 {
		return nil, NoAccountsError
	}

	for _, a := range accounts {
		if a.GetType() == accountType {
			return a, nil
		}
	}

	s.logger.Warnf("no account of type %s, falling back to %s", accountType, accounts[0].GetId())
	return accounts[0], nil
}
