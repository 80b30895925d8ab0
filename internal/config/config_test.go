package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{"JWT_SECRET": "secret"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":9090", cfg.Server.Address)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout())
				assert.Equal(t, DriverMySQL, cfg.Database.Driver)
				assert.Equal(t, "localhost:6379", cfg.Cache.Address())
				assert.Equal(t, uint64(10000000), cfg.Cache.BloomBitSize)
				assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
				assert.Equal(t, 100, cfg.App.LikesBatchSize)
				assert.Equal(t, time.Second, cfg.App.LikesFlushInterval)
			},
		},
		{
			name: "mongo backend",
			envVars: map[string]string{
				"JWT_SECRET":       "secret",
				"DATABASE_DRIVER":  "mongo",
				"MONGODB_URI":      "mongodb://mongo:27017",
				"MONGODB_DATABASE": "testBloglist",
				"CACHE_LIST_TTL":   "30s",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DriverMongo, cfg.Database.Driver)
				assert.Equal(t, "mongodb://mongo:27017", cfg.Database.MongoURI)
				assert.Equal(t, "testBloglist", cfg.Database.MongoDatabase)
				assert.Equal(t, 30*time.Second, cfg.Cache.ListTTL)
			},
		},
		{
			name: "tokens without expiry",
			envVars: map[string]string{
				"JWT_SECRET":       "secret",
				"JWT_EXPIRE_HOURS": "0",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, time.Duration(0), cfg.Auth.TokenTTL())
			},
		},
		{
			name:    "missing jwt secret",
			envVars: map[string]string{"JWT_SECRET": ""},
			wantErr: true,
		},
		{
			name: "unknown driver",
			envVars: map[string]string{
				"JWT_SECRET":      "secret",
				"DATABASE_DRIVER": "sqlite",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"JWT_SECRET": "secret",
				"LOG_LEVEL":  "verbose",
			},
			wantErr: true,
		},
		{
			name: "malformed number",
			envVars: map[string]string{
				"JWT_SECRET": "secret",
				"CACHE_DB":   "one",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load(noDotenv(t))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BLOGLIST_TEST_SECRET=from-file\nJWT_SECRET=from-file\n"), 0o600))
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	t.Cleanup(func() { _ = os.Unsetenv("BLOGLIST_TEST_SECRET") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{User: "root", Pass: "pw", Host: "db", Port: 3306, Name: "bloglist", Location: "UTC"}
	assert.Equal(t, "root:pw@tcp(db:3306)/bloglist?clientFoundRows=true&loc=UTC&parseTime=1", d.DSN())
}
