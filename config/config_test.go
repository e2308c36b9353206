package config

import (
	"testing"
	"time"

	"bookclub/internal/domain/constants"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, constants.IdentityProviderLocal, cfg.Identity.Provider)
	assert.Equal(t, 24*time.Hour, cfg.Identity.AccessTTL)
	require.NotNil(t, cfg.Blob)
	assert.Equal(t, "mem://", cfg.Blob.BucketURL)
	assert.Equal(t, int64(defaultUploadMaxSize), cfg.Blob.MaxSize)
	require.NotNil(t, cfg.Share)
	assert.Equal(t, defaultQRCodeSize, cfg.Share.Size)
	assert.Equal(t, "M", cfg.Share.ErrorCorrectionLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "memory and local",
			mutate: func(c *Config) { c.Identity.AccessSecret = "s" },
		},
		{
			name:    "local without secret",
			mutate:  func(*Config) {},
			wantErr: "identity.accessSecret",
		},
		{
			name: "postgres without section",
			mutate: func(c *Config) {
				c.Identity.AccessSecret = "s"
				c.Storage.Driver = constants.StorageDriverPostgres
			},
			wantErr: "postgres section",
		},
		{
			name: "postgres with section",
			mutate: func(c *Config) {
				c.Identity.AccessSecret = "s"
				c.Storage.Driver = constants.StorageDriverPostgres
				c.Postgres = &postgres.DBConn{}
			},
		},
		{
			name: "firestore without project",
			mutate: func(c *Config) {
				c.Identity.AccessSecret = "s"
				c.Storage.Driver = constants.StorageDriverFirestore
			},
			wantErr: "firebase.projectId",
		},
		{
			name: "firebase identity",
			mutate: func(c *Config) {
				c.Identity.Provider = constants.IdentityProviderFirebase
				c.Firebase = &FirebaseConfig{ProjectID: "book-club"}
			},
		},
		{
			name: "relay sharing the api port",
			mutate: func(c *Config) {
				c.Identity.AccessSecret = "s"
				c.HTTP.Port = 8080
				c.Relay = &RelayConfig{Port: 8080}
			},
			wantErr: "relay.port",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "mongo" },
			wantErr: "unknown storage driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
