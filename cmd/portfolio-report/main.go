package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/STTM-NSU/portfolio-report/internal/config"
	"github.com/STTM-NSU/portfolio-report/internal/invest/account"
	"github.com/STTM-NSU/portfolio-report/internal/invest/instrument"
	"github.com/STTM-NSU/portfolio-report/internal/invest/operation"
	"github.com/STTM-NSU/portfolio-report/internal/invest/position"
	"github.com/STTM-NSU/portfolio-report/internal/logger"
	"github.com/STTM-NSU/portfolio-report/internal/render"
	"github.com/STTM-NSU/portfolio-report/internal/report"
	"github.com/joho/godotenv"
	"github.com/russianinvestments/invest-api-go-sdk/investgo"
)

const (
	_investCfgFilePath = "./configs/invest.yaml"
)

func main() {
	var (
		reportCfgPath = flag.String("config", "", "report config file (yaml)")
		investCfgPath = flag.String("invest-config", _investCfgFilePath, "invest sdk config file")
		ticker        = flag.String("ticker", "", "print the operation history for one instrument instead of the portfolio report")
		jsonOut       = flag.Bool("json", false, "print the report as json")
		verbose       = flag.Bool("verbose", false, "include per-paper tables in asset sections")
		logLevel      = flag.String("log-level", "info", "debug|info|warn|error")
	)
	flag.Parse()

	zapLogger, loggerSync, err := logger.NewZapLogger(logger.ParseLevel(*logLevel))
	if err != nil {
		log.Fatalf("%s: can't init logger", err)
	}
	defer loggerSync()

	if err := godotenv.Load(); err != nil {
		zapLogger.Warnf("can't detect .env file")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reportCfg := config.ReportConfig{}
	if *reportCfgPath != "" {
		if reportCfg, err = config.LoadReportConfig(*reportCfgPath); err != nil {
			zapLogger.Fatalf("%s: can't load report cfg", err)
		}
	} else if err := reportCfg.Setup(); err != nil {
		zapLogger.Fatalf("%s: can't setup report cfg", err)
	}
	if *jsonOut {
		reportCfg.Output = config.JSON
	}
	if *verbose {
		reportCfg.Verbose = true
	}

	investCfg, err := config.LoadInvestConfig(*investCfgPath)
	if err != nil {
		zapLogger.Fatalf("%s: can't load invest cfg", err)
	}

	investClient, err := investgo.NewClient(ctx, investCfg, zapLogger)
	if err != nil {
		zapLogger.Fatalf("%s: can't create invest client", err)
	}
	defer func() {
		if err := investClient.Stop(); err != nil {
			zapLogger.Errorf("%s: can't stop invest client", err)
		}
	}()

	accountsService := account.NewAccountsService(investClient, reportCfg.Retry, zapLogger)
	instrumentsService := instrument.NewInstrumentsService(investClient, reportCfg.Retry, zapLogger)
	portfolioService := position.NewPortfolioService(investClient, reportCfg.Retry, zapLogger)
	operationsService := operation.NewOperationsService(investClient, reportCfg.Retry, zapLogger)

	acc, err := accountsService.Get(ctx, reportCfg.Account.ToInvestType())
	if err != nil {
		zapLogger.Fatalf("%s: can't get account", err)
	}
	zapLogger.Infof("reporting on account %s", acc.GetId())

	builder := report.NewBuilder(instrumentsService, portfolioService, operationsService, zapLogger)

	if *ticker != "" {
		runHistory(ctx, zapLogger, builder, acc.GetId(), *ticker)
		return
	}

	runPortfolio(ctx, zapLogger, builder, reportCfg, acc.GetId())
}

func runPortfolio(ctx context.Context, zapLogger logger.Logger, builder *report.Builder, cfg config.ReportConfig, accountID string) {
	pf, err := builder.Build(ctx, accountID)
	if err != nil {
		zapLogger.Fatalf("%s: can't build report", err)
	}

	if cfg.Output == config.JSON {
		out, err := render.PortfolioJSON(pf)
		if err != nil {
			zapLogger.Fatalf("%s: can't marshal report", err)
		}
		fmt.Println(string(out))
		return
	}

	out, err := render.NewMarkdown(cfg.Verbose).Portfolio(pf)
	if err != nil {
		zapLogger.Fatalf("%s: can't render report", err)
	}
	fmt.Println(out)
}

func runHistory(ctx context.Context, zapLogger logger.Logger, builder *report.Builder, accountID, ticker string) {
	history, err := builder.History(ctx, accountID, ticker)
	if err != nil {
		zapLogger.Fatalf("%s: can't build history", err)
	}
	if history == nil {
		zapLogger.Infof("no operations for %s", ticker)
		return
	}

	fmt.Println(render.NewMarkdown(true).History(history))
}
