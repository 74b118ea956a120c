package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestGetEnvAsDurationOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal time.Duration
		expected   time.Duration
	}{
		{"parses duration", "TEST_DUR_1", "90s", time.Second, 90 * time.Second},
		{"uses default for empty", "TEST_DUR_2", "", time.Minute, time.Minute},
		{"uses default for garbage", "TEST_DUR_3", "soon", time.Minute, time.Minute},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			assert.Equal(t, tc.expected, getEnvAsDurationOrDefault(tc.key, tc.defaultVal))
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	assert.Panics(t, func() { mustGetEnv("NONEXISTENT_REQUIRED_VAR") })
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	t.Setenv("TEST_REQUIRED", "value123")
	assert.Equal(t, "value123", mustGetEnv("TEST_REQUIRED"))
}

func TestLoad_MissingAPIKeyDoesNotPanic(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("HUGGINGFACE_API_KEY", "")
	t.Setenv("GAME_TOKEN_SECRET", "")

	var cfg *Config
	assert.NotPanics(t, func() { cfg = Load() })
	assert.Empty(t, cfg.InferenceAPIKey())
	assert.Equal(t, devGameTokenSecret, cfg.GameTokenSecret)
}

func TestLoad_ProductionRequiresTokenSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("GAME_TOKEN_SECRET", "")

	assert.Panics(t, func() { Load() })
}

func TestInferenceAPIKey_SelectsProvider(t *testing.T) {
	cfg := &Config{HuggingFaceAPIKey: "hf", GeminiAPIKey: "gm"}

	cfg.InferenceProvider = "huggingface"
	assert.Equal(t, "hf", cfg.InferenceAPIKey())

	cfg.InferenceProvider = "gemini"
	assert.Equal(t, "gm", cfg.InferenceAPIKey())
}
