package config

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestBuild_MergePriority(t *testing.T) {
	// earlier configs win for non-zero fields
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "from-env"}},
		&StructuredConfig{Auth: Auth{TokenSignKey: "from-flags", TokenIssuer: "flag-issuer"}},
	)
	b.configs = append(b.configs, defaults())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.Auth.TokenIssuer)
	// untouched fields come from defaults
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("env parsing exploded")

	_, err := b.build()
	assert.ErrorContains(t, err, "env parsing exploded")
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	// no sign key anywhere
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{Driver: DriverSQLite, DSN: "./finance.db"},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestWithJSON_MergesFile(t *testing.T) {
	var fileCfg StructuredJSONConfig
	fileCfg.Auth.TokenSignKey = "json-secret"
	fileCfg.Storage.Driver = DriverSQLite
	fileCfg.Storage.DSN = "./from-json.db"
	path := writeTempJSONConfig(t, fileCfg)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "./from-json.db", cfg.Storage.DSN)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	_, err := b.build()
	assert.Error(t, err)
}

func TestValidate_Table(t *testing.T) {
	valid := StructuredConfig{
		Auth:    Auth{TokenSignKey: "k", TokenIssuer: "iss", TokenDuration: time.Hour},
		Storage: Storage{Driver: DriverPostgres, DSN: "postgres://localhost/money"},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	}

	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.Auth.TokenSignKey = "" }, wantErr: ErrInvalidAuthConfigs},
		{name: "zero duration", mutate: func(c *StructuredConfig) { c.Auth.TokenDuration = 0 }, wantErr: ErrInvalidAuthConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.Driver = "oracle" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
