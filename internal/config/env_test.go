// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VECTOR_KEY":          "c2VjcmV0LWtleQ==",
		"APP_MATCH_THRESHOLD":     "0.45",
		"APP_RECORD_ALL_ATTEMPTS": "false",
		"APP_OPERATOR_KEY":        "operator_secret",
		"APP_TOKEN_SIGN_KEY":      "jwt_secret",
		"APP_TOKEN_ISSUER":        "test_issuer",
		"APP_TOKEN_DURATION":      "1h",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "gatekeeper.db",

		"EXTRACTOR_BASE_URL": "http://localhost:5001",
		"EXTRACTOR_TIMEOUT":  "10s",
	}
	for name, value := range envVars {
		t.Setenv(name, value)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "c2VjcmV0LWtleQ==", cfg.App.VectorKey)
	assert.InDelta(t, 0.45, cfg.App.MatchThreshold, 1e-9)
	assert.False(t, cfg.App.RecordAllAttempts)
	assert.Equal(t, "operator_secret", cfg.App.OperatorKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "gatekeeper.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http://localhost:5001", cfg.Extractor.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Extractor.Timeout)
}

func TestParseEnv_Defaults(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.InDelta(t, 0.6, cfg.App.MatchThreshold, 1e-9)
	assert.True(t, cfg.App.RecordAllAttempts)
	assert.Equal(t, "go-gate-keeper", cfg.App.TokenIssuer)
	assert.Equal(t, 8*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Extractor.Timeout)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("APP_MATCH_THRESHOLD", "not-a-number")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
