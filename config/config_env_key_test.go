package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"accessTokenTTL": "30m",
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRevocationPrefix, cfg.Revocation.KeyPrefix)
	assert.Equal(t, time.Minute, cfg.Revocation.CleanupInterval)
	assert.Equal(t, "uploads", cfg.Storage.UploadPrefix)
	assert.Equal(t, "/files", cfg.Storage.PublicPathPrefix)
	assert.Nil(t, cfg.Metrics)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:       &AuthConfig{AccessTokenTTL: 5 * time.Minute, BcryptCost: 10},
		Revocation: &RevocationConfig{Backend: "memory", KeyPrefix: "x:", CleanupInterval: time.Second},
		Storage:    &StorageConfig{UploadPrefix: "raw", PublicPathPrefix: "/static"},
		Metrics:    &MetricsConfig{Enabled: true},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "x:", cfg.Revocation.KeyPrefix)
	assert.Equal(t, time.Second, cfg.Revocation.CleanupInterval)
	assert.Equal(t, "raw", cfg.Storage.UploadPrefix)
	assert.Equal(t, "/static", cfg.Storage.PublicPathPrefix)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}
