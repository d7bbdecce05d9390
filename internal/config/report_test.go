package config

import (
	"testing"

	investapi "github.com/russianinvestments/invest-api-go-sdk/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportConfigDefaults(t *testing.T) {
	cfg := ReportConfig{}

	require.NoError(t, cfg.Setup())

	assert.Equal(t, Broker, cfg.Account)
	assert.Equal(t, Markdown, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 5, cfg.Retry.Attempts)
}

func TestReportConfigRejectsUnknownValues(t *testing.T) {
	cfg := ReportConfig{Account: "margin"}
	require.Error(t, cfg.Setup())

	cfg = ReportConfig{Output: "xml"}
	require.Error(t, cfg.Setup())
}

func TestAccountKindToInvestType(t *testing.T) {
	assert.Equal(t, investapi.AccountType_ACCOUNT_TYPE_TINKOFF, Broker.ToInvestType())
	assert.Equal(t, investapi.AccountType_ACCOUNT_TYPE_TINKOFF_IIS, IIS.ToInvestType())
}
