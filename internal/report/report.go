package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/STTM-NSU/portfolio-report/internal/domain"
	"github.com/STTM-NSU/portfolio-report/internal/invest/instrument"
	"github.com/STTM-NSU/portfolio-report/internal/invest/operation"
	"github.com/STTM-NSU/portfolio-report/internal/invest/position"
	"github.com/STTM-NSU/portfolio-report/internal/logger"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
)

// Builder assembles the report tree from the broker services. The
// aggregation itself is single-threaded; only the per-instrument
// operation fetches run concurrently, since each instrument's totals are
// independent.
type Builder struct {
	instrumentsService *instrument.InstrumentsService
	portfolioService   *position.PortfolioService
	operationsService  *operation.OperationsService
	logger             logger.Logger
}

func NewBuilder(
	instrumentsService *instrument.InstrumentsService,
	portfolioService *position.PortfolioService,
	operationsService *operation.OperationsService,
	logger logger.Logger,
) *Builder {
	return &Builder{
		instrumentsService: instrumentsService,
		portfolioService:   portfolioService,
		operationsService:  operationsService,
		logger:             logger,
	}
}

// paperResult keeps the position's original index so concurrent fetches
// don't reorder papers within their asset groups.
type paperResult struct {
	idx   int
	class domain.InstrumentClass
	paper domain.Paper
	skip  bool
}

// Build runs one reporting pass: catalog + positions, then one operation
// history per held instrument. Malformed or unresolvable positions
// degrade the report by one line item instead of aborting it.
func (b *Builder) Build(ctx context.Context, accountID string) (*domain.Portfolio, error) {
	catalog, err := b.instrumentsService.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: can't load instrument catalogs", err)
	}
	b.logger.Debugf("loaded %d catalog instruments", len(catalog))

	positions, err := b.portfolioService.GetPositions(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: can't load positions", err)
	}
	b.logger.Infof("building report for %d positions", len(positions))

	results := make([]paperResult, len(positions))

	var wg sync.WaitGroup
	for idx, p := range positions {
		wg.Add(1)
		go func(idx int, p *investapi.PortfolioPosition) {
			defer wg.Done()
			results[idx] = b.buildPaper(ctx, accountID, idx, p, catalog)
		}(idx, p)
	}
	wg.Wait()

	pf := domain.NewPortfolio()
	skipped := 0
	for _, r := range results {
		if r.skip {
			skipped++
			continue
		}
		if err := pf.Asset(r.class).AddPaper(r.paper); err != nil {
			b.logger.Warnf("%s: skipping paper %s", err, r.paper.Ticker)
			skipped++
		}
	}

	if skipped > 0 {
		b.logger.Warnf("report is missing %d of %d positions", skipped, len(positions))
	}

	return pf, nil
}

func (b *Builder) buildPaper(ctx context.Context, accountID string, idx int, p *investapi.PortfolioPosition, catalog instrument.Catalog) paperResult {
	skip := paperResult{idx: idx, skip: true}

	class, err := domain.ParseInstrumentClass(p.GetInstrumentType())
	if err != nil {
		b.logger.Warnf("%s: skipping position figi=%s", err, p.GetFigi())
		return skip
	}

	pos, err := position.NewPosition(p)
	if err != nil {
		b.logger.Warnf("%s: skipping position", err)
		return skip
	}

	instr, ok := catalog[p.GetFigi()]
	if !ok {
		b.logger.Warnf("figi=%s not in catalog, skipping position", p.GetFigi())
		return skip
	}

	ops, err := b.operationsService.GetExecutedOperations(ctx, accountID, p.GetFigi())
	if err != nil {
		b.logger.Warnf("%s: skipping position figi=%s", err, p.GetFigi())
		return skip
	}

	totals, skippedOps := operation.Reduce(ops, pos.Currency)
	if skippedOps > 0 {
		b.logger.Debugf("figi=%s: %d operations without payment skipped", p.GetFigi(), skippedOps)
	}

	return paperResult{
		idx:   idx,
		class: class,
		paper: domain.Paper{
			Name:       instr.Name,
			Ticker:     instr.Ticker,
			FIGI:       p.GetFigi(),
			Position:   pos,
			Totals:     totals,
			ProfitKind: class.ProfitKind(),
		},
	}
}
