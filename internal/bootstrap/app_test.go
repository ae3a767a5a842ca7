package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "LOG_LEVEL", "APP_ENV", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"REDIS_KEY_PREFIX", "CANVAS_WIDTH", "CANVAS_HEIGHT", "RATE_LIMIT_MAX",
		"RATE_LIMIT_WINDOW", "CORS_ALLOWED_ORIGIN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 250, cfg.CanvasWidth)
	assert.Equal(t, 250, cfg.CanvasHeight)
	assert.Equal(t, "plot:", cfg.KeyPrefix)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, time.Second, cfg.RateLimitWindow)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "not-a-level")
	t.Setenv("CANVAS_WIDTH", "500")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel, "非法日志级别应回退为 info")
	assert.Equal(t, 500, cfg.CanvasWidth)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("CANVAS_HEIGHT", "abc")
	_, err := LoadConfig()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("CANVAS_HEIGHT", "0")
	_, err = LoadConfig()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("RATE_LIMIT_WINDOW", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestNewAppWithConfig_Routes(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig()
	require.NoError(t, err)

	app, err := NewAppWithConfig(cfg)
	require.NoError(t, err)
	assert.Nil(t, app.RedisClient)
	assert.Equal(t, ":8080", app.HttpServer.Addr)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/plot", strings.NewReader(`{"input":"L 0 0 10 10"}`))
	req.Header.Set("Content-Type", "application/json")
	app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"line"`)
}

func TestNewAppWithConfig_RedisUnavailable(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.RedisAddr = "127.0.0.1:1"

	_, err = NewAppWithConfig(cfg)
	assert.Error(t, err)
}
