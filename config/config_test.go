package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 0, cfg.LogLevel)
	require.Equal(t, "person", cfg.DefaultRecipientType)
	require.Empty(t, cfg.DefaultCountryCode)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("QRTRANSFER_LOG_LEVEL", "-4")
	t.Setenv("QRTRANSFER_DEFAULT_RECIPIENT_TYPE", "company")
	t.Setenv("QRTRANSFER_DEFAULT_COUNTRY_CODE", "PL")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, -4, cfg.LogLevel)
	require.Equal(t, "company", cfg.DefaultRecipientType)
	require.Equal(t, "PL", cfg.DefaultCountryCode)
}
