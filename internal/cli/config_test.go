package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("CROWN_SERVER", "")
	t.Setenv("CROWN_DATA_DIR", "")
	t.Setenv("CROWN_OUTPUT", "")

	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.Verbose)
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CROWN_SERVER", "https://game.example.com")
	t.Setenv("CROWN_DATA_DIR", "/tmp/crown-test")
	t.Setenv("CROWN_OUTPUT", "json")

	cfg := DefaultConfig()

	assert.Equal(t, "https://game.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/crown-test", cfg.DataDir)
	assert.Equal(t, "json", cfg.Output)
}
