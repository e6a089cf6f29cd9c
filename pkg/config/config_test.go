package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWebUI(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("AGENTGATEWAY_DISABLED", "")

		cfg, err := LoadWebUI()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.False(t, cfg.GatewayDisabled)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("AGENTGATEWAY_DISABLED", "true")

		cfg, err := LoadWebUI()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.GatewayDisabled)
	})
}

func TestLoadContext7(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")

		cfg, err := LoadContext7()
		require.NoError(t, err)
		assert.Equal(t, "8001", cfg.Port)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("PORT", "9001")

		cfg, err := LoadContext7()
		require.NoError(t, err)
		assert.Equal(t, "9001", cfg.Port)
	})
}
