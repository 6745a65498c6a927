package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

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

// minimalConfig carries the only field without a default.
func minimalConfig() *StructuredConfig {
	return &StructuredConfig{App: App{SessionSecret: "secret"}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "from-env"}},
		&StructuredConfig{App: App{Version: "from-flags", SessionIssuer: "from-flags"}},
		minimalConfig(),
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "from-flags", cfg.App.SessionIssuer)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHashCost, cfg.App.HashCost)
	assert.Equal(t, DefaultLoginDelay, cfg.App.LoginDelay)
	assert.Equal(t, DefaultMaxLoginAttempts, cfg.App.MaxLoginAttempts)
	assert.Equal(t, DefaultLockoutDuration, cfg.App.LockoutDuration)
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, DefaultSessionCookie, cfg.App.SessionCookie)
	assert.Equal(t, DefaultSessionIssuer, cfg.App.SessionIssuer)
	assert.Equal(t, float64(DefaultMinPasswordEntropy), cfg.App.MinPasswordEntropy)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.False(t, cfg.App.InsecureCookie)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.False(t, cfg.Server.TLSEnabled())
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing secret", mutate: func(c *StructuredConfig) { c.App.SessionSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too low", mutate: func(c *StructuredConfig) { c.App.HashCost = 3 }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too high", mutate: func(c *StructuredConfig) { c.App.HashCost = 32 }, wantErr: ErrInvalidAppConfigs},
		{name: "negative session duration", mutate: func(c *StructuredConfig) { c.App.SessionDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "negative login delay", mutate: func(c *StructuredConfig) { c.App.LoginDelay = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "no attempts", mutate: func(c *StructuredConfig) { c.App.MaxLoginAttempts = -1 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "cert without key", mutate: func(c *StructuredConfig) { c.Server.TLSCertFile = "/etc/cert.pem" }, wantErr: ErrInvalidServerConfigs},
		{
			name: "cert and key",
			mutate: func(c *StructuredConfig) {
				c.Server.TLSCertFile = "/etc/cert.pem"
				c.Server.TLSKeyFile = "/etc/key.pem"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.App.SessionSecret = "secret"
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":        "env-version",
		"APP_SESSION_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.SessionIssuer)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_HASH_COST": "many"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-session-secret", "s"}))
	require.Len(t, b.configs, 1)
	assert.Equal(t, "s", b.configs[0].App.SessionSecret)

	b.withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.SessionIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.SessionIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the env path wins over the flag path.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.Version)
}

func TestWithJSON_SkipsWhenErrorAlreadySet(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "should-not-appear"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Len(t, b.configs, 1)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestFullChain_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.SessionSecret = "json-secret"
	payload.App.Version = "json-version"
	payload.Server.HTTPAddress = "127.0.0.1:9000"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_VERSION": "env-version",
		"CONFIG":      path,
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "127.0.0.1:7000", "-hash-cost", "10"}).
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "json-secret", cfg.App.SessionSecret)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10, cfg.App.HashCost)
	assert.Equal(t, DefaultLockoutDuration, cfg.App.LockoutDuration)
}
