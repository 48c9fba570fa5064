package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOLIDAY_SOURCE", "")
	t.Setenv("SEASON_YEAR", "")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("MQTT_TOPIC", "")
	t.Setenv("USE_SPACES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 2026, cfg.SeasonYear)
	assert.Equal(t, HolidaySourceFile, cfg.HolidaySource)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "calendar/today", cfg.MQTTTopic)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"db source without url", map[string]string{"HOLIDAY_SOURCE": "db", "DATABASE_URL": ""}},
		{"unknown source", map[string]string{"HOLIDAY_SOURCE": "ftp"}},
		{"bad season year", map[string]string{"SEASON_YEAR": "next"}},
		{"bad ttl", map[string]string{"CACHE_TTL": "soon"}},
		{"zero broadcast interval", map[string]string{"BROADCAST_INTERVAL": "0s"}},
		{"negative broadcast interval", map[string]string{"BROADCAST_INTERVAL": "-1m"}},
		{"spaces without bucket", map[string]string{"USE_SPACES": "true", "SPACES_BUCKET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TIMEZONE", "UTC")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestAdminEnabled(t *testing.T) {
	cfg := &Config{JWTSecret: "s"}
	assert.False(t, cfg.AdminEnabled())
	cfg.AdminPasswordHash = "$2a$10$abc"
	assert.True(t, cfg.AdminEnabled())
}

func TestLoadResolvesMaldivesTimezone(t *testing.T) {
	t.Setenv("HOLIDAY_SOURCE", "")
	t.Setenv("USE_SPACES", "")
	t.Setenv("TIMEZONE", "Indian/Maldives")
	t.Setenv("BROADCAST_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Indian/Maldives", cfg.Location.String())
}
