package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "PERSISTENCE_DRIVER", "PERSISTENCE_KEY", "SESSION_KEY", "PERSISTENCE_DEBOUNCE", "ADMIN_USERNAME", "SEED_ON_START", "PRICE_SYNC_ENDPOINT", "PRICE_SYNC_MOCK"} {
			t.Setenv(k, "")
		}
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, DriverFile, cfg.PersistenceDriver)
		assert.Equal(t, "moap_data", cfg.PersistenceKey)
		assert.Equal(t, "moap_user", cfg.SessionKey)
		assert.Equal(t, 250*time.Millisecond, cfg.PersistenceDebounce)
		assert.Equal(t, "admin", cfg.AdminUsername)
		assert.True(t, cfg.SeedOnStart)
		assert.True(t, cfg.PriceSyncMock)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("PERSISTENCE_DRIVER", "REDIS")
		t.Setenv("PERSISTENCE_DEBOUNCE", "0s")
		t.Setenv("PRICE_SYNC_ENDPOINT", "http://prices.local/sync")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.pt, http://b.pt ,")
		t.Setenv("SEED_ON_START", "false")
		t.Setenv("PRICE_SYNC_MOCK", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, DriverRedis, cfg.PersistenceDriver)
		assert.Zero(t, cfg.PersistenceDebounce)
		assert.False(t, cfg.PriceSyncMock)
		assert.False(t, cfg.SeedOnStart)
		assert.Equal(t, []string{"http://a.pt", "http://b.pt"}, cfg.CORSAllowedOrigins)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("PERSISTENCE_DRIVER", "mongo")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		t.Setenv("PERSISTENCE_DRIVER", "s3")
		t.Setenv("S3_BUCKET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad debounce", func(t *testing.T) {
		t.Setenv("PERSISTENCE_DEBOUNCE", "soon")
		_, err := Load()
		assert.Error(t, err)
	})
}
