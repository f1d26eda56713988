package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const validConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "reservations"
password = "secret"
dbname = "reservations"

[logs]
file = ""
level = "debug"

[metrics]
enabled = true

[auth]
admin_token = "test-admin-token"

[booking]
duration_minutes = 120
on_no_availability = "reject"
`

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 120, cfg.Booking.DurationMinutes)
	assert.Equal(t, PolicyReject, cfg.Booking.OnNoAvailability)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "test-admin-token", cfg.Auth.AdminToken)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[database]
host = "localhost"
port = 5432
user = "reservations"
dbname = "reservations"

[auth]
admin_token = "t"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "ctrs-reservation-service", cfg.Metrics.ServiceName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 90, cfg.Booking.DurationMinutes)
	assert.Equal(t, PolicyPending, cfg.Booking.OnNoAvailability)
	assert.Equal(t, NotifyModeLog, cfg.Notifications.Mode)
	assert.Equal(t, 2, cfg.Notifications.Workers)
	assert.Equal(t, 64, cfg.Notifications.QueueSize)
	assert.Equal(t, "reservation.events", cfg.Notifications.AMQP.Queue)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database host",
			content: `
[database]
user = "u"
dbname = "d"

[auth]
admin_token = "t"
`,
		},
		{
			name: "missing admin token",
			content: `
[database]
host = "localhost"
user = "u"
dbname = "d"
`,
		},
		{
			name: "unknown no-availability policy",
			content: `
[database]
host = "localhost"
user = "u"
dbname = "d"

[auth]
admin_token = "t"

[booking]
on_no_availability = "waitlist"
`,
		},
		{
			name: "duration above limit",
			content: `
[database]
host = "localhost"
user = "u"
dbname = "d"

[auth]
admin_token = "t"

[booking]
duration_minutes = 2000
`,
		},
		{
			name: "unknown notification mode",
			content: `
[database]
host = "localhost"
user = "u"
dbname = "d"

[auth]
admin_token = "t"

[notifications]
mode = "sms"
`,
		},
		{
			name: "amqp mode without url",
			content: `
[database]
host = "localhost"
user = "u"
dbname = "d"

[auth]
admin_token = "t"

[notifications]
enabled = true
mode = "amqp"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "pw",
		DBName:   "reservations",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db.internal port=5433 user=svc password=pw dbname=reservations sslmode=require", cfg.DSN())
}
