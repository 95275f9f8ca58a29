package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storefront": map[string]any{
			"baseUrl": "",
		},
		"redis": map[string]any{
			"cartTtl": "30m",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STOREFRONT_BASEURL", want: "storefront.baseUrl"},
		{envKey: "REDIS_CARTTTL", want: "redis.cartTtl"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("storefront:\n  baseUrl: https://example.test/api/\n  timeout: 5s\npolling:\n  cart: 10s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quickmart.yaml"), yamlBody, 0o600))

	t.Setenv("POLLING_CART", "45s")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(cwd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("quickmart", rel)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/api/", cfg.Storefront.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Storefront.Timeout)
	assert.Equal(t, 45*time.Second, cfg.Polling.Cart)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultStorefrontBaseURL, cfg.Storefront.BaseURL)
	assert.Equal(t, "mem://", cfg.Session.BucketURL)
	assert.Equal(t, defaultCartPollInterval, cfg.Polling.Cart)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}
