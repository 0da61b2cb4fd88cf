package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "placeholder.db", cfg.SQLitePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.CredentialCacheTTL)
	assert.Equal(t, 20, cfg.CredentialRatePerMinute)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "postgres without url",
			cfg:     Config{DBDriver: DriverPostgres, JWTSecret: "s", CredentialRatePerMinute: 1},
			wantErr: "POSTGRES_URL",
		},
		{
			name:    "unknown driver",
			cfg:     Config{DBDriver: "mysql", JWTSecret: "s", CredentialRatePerMinute: 1},
			wantErr: "unsupported DB_DRIVER",
		},
		{
			name:    "zero rate",
			cfg:     Config{DBDriver: DriverSQLite, SQLitePath: "x.db", JWTSecret: "s"},
			wantErr: "CREDENTIAL_RATE_PER_MINUTE",
		},
		{
			name: "valid postgres",
			cfg: Config{
				DBDriver:                DriverPostgres,
				PostgresURL:             "postgres://localhost/db",
				JWTSecret:               "s",
				CredentialRatePerMinute: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
