package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: recipe-api
  env: test
  http:
    host: 127.0.0.1
    port: 5000
  admin:
    host: 127.0.0.1
    port: 5001
log:
  level: debug
  json: true
jwt:
  secret: test-secret
  issuer: recipe-api
  accesstokenttlmin: 30
db:
  driver: mysql
  dsn: root@tcp(127.0.0.1:3306)/recipes
  automigrate: true
redis:
  addr: 127.0.0.1:6379
  recipe_ttl_sec: 60
`

func writeTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	c, err := load(writeTempConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "recipe-api", c.App.Name)
	assert.Equal(t, 5000, c.App.HTTP.Port)
	assert.Equal(t, 5001, c.App.Admin.Port)
	assert.Equal(t, "test-secret", c.JWT.Secret)
	assert.Equal(t, 30, c.JWT.AccessTokenTTLMin)
	assert.Equal(t, "mysql", c.DB.Driver)
	assert.True(t, c.DB.AutoMigrate)
	assert.Equal(t, "127.0.0.1:6379", c.Redis.Addr)
	assert.Equal(t, 60, c.Redis.RecipeTTLSec)
	assert.True(t, c.Log.JSON)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "from-env")

	c, err := load(writeTempConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.JWT.Secret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
