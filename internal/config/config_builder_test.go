// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     "secret",
			TokenIssuer:      "go-places",
			TokenDuration:    time.Hour,
			PasswordHashCost: 12,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/places"}},
		Server:  Server{HTTPAddress: ":5000"},
		Workers: Workers{ImageCleanupQueueSize: 64},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
	assert.NotNil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverrideNonZeroFields(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.App.TokenIssuer = "env-issuer"
	first.Server.HTTPAddress = ":5000"
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress, "zero fields must not override")
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestBuild_Valid(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

func TestValidate_HashCostOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.App.PasswordHashCost = 99
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg.App.PasswordHashCost = 1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestWithEnv_AppendsConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.TokenSignKey)
}

func TestWithEnv_ParseErrorIsCollected(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "forever")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_UsesLastSpecifiedPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{"token_sign_key": "json-secret"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/does/not/matter.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "json-secret", b.configs[2].App.TokenSignKey)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nope/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_OverridesEnvValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{"token_issuer": "json-issuer"},
	})

	env := validConfig()
	env.JSONFilePath = path

	b := newConfigBuilder()
	b.configs = append(b.configs, env)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}
