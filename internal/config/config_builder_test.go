package config

import (
	"encoding/json"
	"math"
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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because no HTTP address is set.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_DefaultsOnly verifies that the defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
}

// TestBuild_EarlierSourceWins verifies that a non-zero field of an earlier
// config is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Name: "from-env"}},
		&StructuredConfig{App: App{Name: "from-flags", Author: "from-flags"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Name)
	assert.Equal(t, "from-flags", cfg.App.Author)
	assert.Equal(t, DefaultAppDescription, cfg.App.Description)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// TestBuild_InvalidLogLevel verifies that an unknown level fails validation.
func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{LogLevel: "chatty"}})
	b.withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_NegativeTimeout verifies that negative timeouts fail validation.
func TestBuild_NegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{RequestTimeout: -time.Second}})
	b.withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_NegativeRateLimit verifies that negative rate settings fail
// validation.
func TestBuild_NegativeRateLimit(t *testing.T) {
	for _, server := range []Server{{RateLimit: -1}, {RateBurst: -1}} {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{Server: server})
		b.withDefaults()

		cfg, err := b.build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	}
}

func TestBuild_NonFiniteRateLimit(t *testing.T) {
	for _, limit := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{Server: Server{RateLimit: limit}})
		b.withDefaults()

		cfg, err := b.build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	}
}

// TestBuild_NaNRateLimitFromEnv verifies that NaN read from the environment is rejected.
func TestBuild_NaNRateLimitFromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_RATE_LIMIT": "NaN"})

	b := newConfigBuilder()
	b.withEnv().withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION": "env-version",
		"APP_AUTHOR":  "env-author",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-author", b.configs[0].App.Author)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed variable is
// recorded in b.err and nothing is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_SHUTDOWN_TIMEOUT": "forever"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

// TestWithFlags_SetsErrorOnBadFlag verifies that a parse failure is recorded.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nowhere"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Server.HTTPAddress = "127.0.0.1:9000"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "127.0.0.1:9000", b.configs[1].Server.HTTPAddress)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file sets
// b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that when multiple configs have a
// JSONFilePath, the highest-priority one is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first-wins"
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
	assert.Equal(t, "first-wins", b.configs[3].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_AllSources verifies the full priority chain:
// env over flags over JSON over defaults.
func TestGetStructuredConfig_AllSources(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Name = "json-name"
	payload.App.Author = "json-author"
	payload.App.Version = "json-version"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{"APP_NAME": "env-name"})

	cfg, err := GetStructuredConfig([]string{
		"-c", path,
		"-app-version", "flag-version",
		"-a", "127.0.0.1:8081",
	})
	require.NoError(t, err)

	assert.Equal(t, "env-name", cfg.App.Name)
	assert.Equal(t, "flag-version", cfg.App.Version)
	assert.Equal(t, "json-author", cfg.App.Author)
	assert.Equal(t, DefaultAppDescription, cfg.App.Description)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestGetStructuredConfig_Defaults verifies that an empty environment and no
// flags produce the default config.
func TestGetStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}
