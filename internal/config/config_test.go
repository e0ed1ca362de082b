package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "https://opentdb.com/api.php", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.Amount)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.DBPath)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRIVIA_AMOUNT", "25")
	t.Setenv("TRIVIA_TIMEOUT", "5s")
	t.Setenv("TRIVIA_API_BASE_URL", "http://localhost:8080/api.php")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Amount)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "http://localhost:8080/api.php", cfg.APIBaseURL)
}

func TestValidateRejectsBadAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount int
	}{
		{"zero", 0},
		{"negative", -3},
		{"over API maximum", 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Env:        "local",
				APIBaseURL: "https://opentdb.com/api.php",
				Amount:     tt.amount,
				Timeout:    time.Second,
			}
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateRejectsEmptyBaseURL(t *testing.T) {
	cfg := &Config{Amount: 10, Timeout: time.Second}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	cfg := &Config{Amount: 10, APIBaseURL: "https://opentdb.com/api.php"}
	assert.Error(t, cfg.Validate())
}
