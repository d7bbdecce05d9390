package instrument

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/STTM-NSU/portfolio-report/internal/domain"
	"github.com/STTM-NSU/portfolio-report/internal/invest/backoff"
	"github.com/STTM-NSU/portfolio-report/internal/logger"
	"github.com/russianinvestments/invest-api-go-sdk/investgo"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
	"go.uber.org/ratelimit"
)

var NotFoundError = errors.New("instrument not found")

// Instrument is the catalog identity of one tradeable paper.
type Instrument struct {
	FIGI   string
	Ticker string
	Name   string
	Class  domain.InstrumentClass
}

// Catalog maps figi to instrument identity.
type Catalog map[string]Instrument

func (c Catalog) Merge(other Catalog) {
	for figi, i := range other {
		c[figi] = i
	}
}

type InstrumentsService struct {
	instrClient *investgo.InstrumentsServiceClient
	rateLimiter ratelimit.Limiter // 200 T/M
	retry       backoff.Config
	logger      logger.Logger
}

func NewInstrumentsService(c *investgo.Client, retry backoff.Config, logger logger.Logger) *InstrumentsService {
	retry.Setup()
	return &InstrumentsService{
		instrClient: c.NewInstrumentsServiceClient(),
		rateLimiter: ratelimit.New(200, ratelimit.Per(1*time.Minute)),
		retry:       retry,
		logger:      logger,
	}
}

// catalogInstrument is what every per-class catalog response item
// exposes, whatever its concrete proto type.
type catalogInstrument interface {
	GetFigi() string
	GetTicker() string
	GetName() string
}

func collect[T catalogInstrument](items []T, class domain.InstrumentClass) Catalog {
	catalog := make(Catalog, len(items))
	for _, i := range items {
		catalog[i.GetFigi()] = Instrument{
			FIGI:   i.GetFigi(),
			Ticker: i.GetTicker(),
			Name:   i.GetName(),
			Class:  class,
		}
	}
	return catalog
}

// fetch wraps one catalog call with the rate limiter and bounded retry.
func fetch[T catalogInstrument](ctx context.Context, s *InstrumentsService, class domain.InstrumentClass,
	call func() ([]T, error)) (Catalog, error) {
	return backoff.Retry(ctx, s.retry, func() (Catalog, error) {
		s.rateLimiter.Take()
		items, err := call()
		if err != nil {
			return nil, fmt.Errorf("%w: can't get %s catalog", err, class)
		}
		return collect(items, class), nil
	})
}

func (s *InstrumentsService) Bonds(ctx context.Context) (Catalog, error) {
	return fetch(ctx, s, domain.ClassBond, func() ([]*investapi.Bond, error) {
		resp, err := s.instrClient.Bonds(investapi.InstrumentStatus_INSTRUMENT_STATUS_ALL)
		if err != nil {
			return nil, err
		}
		return resp.GetInstruments(), nil
	})
}

func (s *InstrumentsService) Shares(ctx context.Context) (Catalog, error) {
	return fetch(ctx, s, domain.ClassShare, func() ([]*investapi.Share, error) {
		resp, err := s.instrClient.Shares(investapi.InstrumentStatus_INSTRUMENT_STATUS_ALL)
		if err != nil {
			return nil, err
		}
		return resp.GetInstruments(), nil
	})
}

func (s *InstrumentsService) Etfs(ctx context.Context) (Catalog, error) {
	return fetch(ctx, s, domain.ClassEtf, func() ([]*investapi.Etf, error) {
		resp, err := s.instrClient.Etfs(investapi.InstrumentStatus_INSTRUMENT_STATUS_ALL)
		if err != nil {
			return nil, err
		}
		return resp.GetInstruments(), nil
	})
}

func (s *InstrumentsService) Currencies(ctx context.Context) (Catalog, error) {
	return fetch(ctx, s, domain.ClassCurrency, func() ([]*investapi.Currency, error) {
		resp, err := s.instrClient.Currencies(investapi.InstrumentStatus_INSTRUMENT_STATUS_ALL)
		if err != nil {
			return nil, err
		}
		return resp.GetInstruments(), nil
	})
}

func (s *InstrumentsService) Futures(ctx context.Context) (Catalog, error) {
	return fetch(ctx, s, domain.ClassFutures, func() ([]*investapi.Future, error) {
		resp, err := s.instrClient.Futures(investapi.InstrumentStatus_INSTRUMENT_STATUS_ALL)
		if err != nil {
			return nil, err
		}
		return resp.GetInstruments(), nil
	})
}

// All fetches the five class catalogs concurrently and merges them.
// Catalogs are independent, so a failure of one fails the whole load.
func (s *InstrumentsService) All(ctx context.Context) (Catalog, error) {
	fetches := []func(context.Context) (Catalog, error){
		s.Bonds, s.Shares, s.Etfs, s.Currencies, s.Futures,
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		catalog  = make(Catalog)
		firstErr error
	)

	for _, f := range fetches {
		wg.Add(1)
		go func(f func(context.Context) (Catalog, error)) {
			defer wg.Done()
			c, err := f(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			catalog.Merge(c)
		}(f)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return catalog, nil
}

// FindByTicker resolves one instrument for the history report.
func (s *InstrumentsService) FindByTicker(ctx context.Context, ticker string) (*Instrument, error) {
	resp, err := backoff.Retry(ctx, s.retry, func() (*investgo.FindInstrumentResponse, error) {
		s.rateLimiter.Take()
		return s.instrClient.FindInstrument(ticker)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: can't find instrument %s", err, ticker)
	}

	for _, i := range resp.GetInstruments() {
		if !strings.EqualFold(i.GetTicker(), ticker) {
			continue
		}
		return &Instrument{
			FIGI:   i.GetFigi(),
			Ticker: i.GetTicker(),
			Name:   i.GetName(),
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", NotFoundError, ticker)
}
