package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Subscription.PeriodDays)
	assert.Equal(t, 30, cfg.Subscription.ApprovalDays)
	assert.Equal(t, time.Hour, cfg.Subscription.SweepInterval)
	assert.Equal(t, int64(2000), cfg.Payment.MonthlyPriceCents)
	assert.Equal(t, "BRL", cfg.Payment.Currency)
	assert.Equal(t, "payment_success", cfg.Payment.SuccessSentinel)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	yaml := []byte(`
database:
  driver: sqlite
  path: test.db
payment:
  checkout_origin: https://pay.example.com
subscription:
  period_days: 31
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), yaml, 0o644))
	t.Setenv("DORAMA_SUBSCRIPTION_APPROVAL_DAYS", "7")

	cfg, err := Load("release")

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "https://pay.example.com", cfg.Payment.CheckoutOrigin)
	assert.Equal(t, 31, cfg.Subscription.PeriodDays)
	assert.Equal(t, 7, cfg.Subscription.ApprovalDays)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DORAMA_DATABASE_DRIVER", "postgres")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DORAMA_PAYMENT_PIX_KEY=pix@doramashorts.com\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("DORAMA_PAYMENT_PIX_KEY") })

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "pix@doramashorts.com", cfg.Payment.PixKey)
}
