package config

import (
	"fmt"
	"os"

	"github.com/STTM-NSU/portfolio-report/internal/invest/backoff"
	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
	"gopkg.in/yaml.v3"
)

type AccountKind string

const (
	Broker AccountKind = "broker"
	IIS    AccountKind = "iis"
)

func (k AccountKind) ToInvestType() investapi.AccountType {
	switch k {
	case IIS:
		return investapi.AccountType_ACCOUNT_TYPE_TINKOFF_IIS
	default:
		return investapi.AccountType_ACCOUNT_TYPE_TINKOFF
	}
}

type OutputFormat string

const (
	Markdown OutputFormat = "markdown"
	JSON     OutputFormat = "json"
)

type ReportConfig struct {
	Account AccountKind    `yaml:"account"`
	Output  OutputFormat   `yaml:"output"`
	Verbose bool           `yaml:"verbose"`
	Retry   backoff.Config `yaml:"retry"`
}

const (
	_accountDefault = Broker
	_outputDefault  = Markdown
)

func (c *ReportConfig) Setup() error {
	if c.Account == "" {
		c.Account = _accountDefault
	}
	if c.Account != Broker && c.Account != IIS {
		return fmt.Errorf("unknown account kind %q", c.Account)
	}

	if c.Output == "" {
		c.Output = _outputDefault
	}
	if c.Output != Markdown && c.Output != JSON {
		return fmt.Errorf("unknown output format %q", c.Output)
	}

	c.Retry.Setup()

	return nil
}

func LoadReportConfig(filename string) (ReportConfig, error) {
	var cfg ReportConfig
	input, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("%w: can't read file", err)
	}

	if err := yaml.Unmarshal(input, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: can't unmarshal config", err)
	}

	if err := cfg.Setup(); err != nil {
		return cfg, fmt.Errorf("%w: can't setup cfg", err)
	}

	return cfg, nil
}
