package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_FallsBackToGoModRoot(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, "go.mod"), "module example.com/test\n\ngo 1.22\n")
	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "ORG_DIRECTORY_TEST_ENV_LOAD=ok\n")

	sub := filepath.Join(tmp, "modules", "activity")
	requireMkdirAll(t, sub)

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(sub); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	_ = os.Unsetenv("ORG_DIRECTORY_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 env file loaded, got %d", n)
	}
	if got := os.Getenv("ORG_DIRECTORY_TEST_ENV_LOAD"); got != "ok" {
		t.Fatalf("expected env var loaded from repo root, got %q", got)
	}
}

func TestConfiguration_Defaults(t *testing.T) {
	c := &Configuration{}
	require.NoError(t, env.Parse(c))
	require.NoError(t, c.validate())

	assert.Equal(t, "/api/v1", c.APIPrefix)
	assert.Equal(t, 8000, c.ServerPort)
	assert.EqualValues(t, 10, c.Database.PoolSize)
	assert.Equal(t, 300, c.Database.WaitAttempts)
	assert.Equal(t, logrus.InfoLevel, c.LogrusLogLevel())
	assert.Contains(t, c.Database.ConnectionString(), "pool_max_conns=10")
}

func TestConfiguration_ValidateRejects(t *testing.T) {
	cases := map[string]string{
		"SERVER_MODE":        "staging",
		"DB_POOL_SIZE":       "0",
		"API_V1_STR":         "api",
		"RATE_LIMIT_STORAGE": "redis",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			c := &Configuration{}
			require.NoError(t, env.Parse(c))
			require.Error(t, c.validate())
		})
	}
}

func TestConfiguration_AllowedOrigins(t *testing.T) {
	c := &Configuration{CorsAllowedOrigins: " http://a.test, ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowedOrigins())
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func requireMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
