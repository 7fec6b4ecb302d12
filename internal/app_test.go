package internal

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/lk16/othello-arena/internal/config"
	"github.com/lk16/othello-arena/internal/models"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost:        "localhost",
		ServerPort:        "3000",
		BasicAuthUsername: "user",
		BasicAuthPassword: "pass",
		Token:             "token",
	}
}

func TestRootEndpoint(t *testing.T) {
	app := BuildApp(testConfig(), nil)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/version", resp.Header.Get("Location"))
}

func TestVersionEndpoint(t *testing.T) {
	app := BuildApp(testConfig(), nil)

	req, err := http.NewRequest(http.MethodGet, "/version", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var version models.VersionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&version))
	require.NotEmpty(t, version.Commit)
}

func TestWebsocketRequiresUpgrade(t *testing.T) {
	app := BuildApp(testConfig(), nil)

	req, err := http.NewRequest(http.MethodGet, "/ws", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestResultsRequireAuth(t *testing.T) {
	app := BuildApp(testConfig(), nil)

	req, err := http.NewRequest(http.MethodGet, "/api/results/stats", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStaticFiles(t *testing.T) {
	cfg := testConfig()

	t.Run("NotConfigured", func(t *testing.T) {
		app := BuildApp(cfg, nil)

		for _, path := range []string{"/game", "/static/game.js"} {
			req, err := http.NewRequest(http.MethodGet, path, nil)
			require.NoError(t, err)

			resp, err := app.Test(req)
			require.NoError(t, err)
			resp.Body.Close()

			require.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		}
	})

	t.Run("Configured", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "game.html"), []byte("<html></html>"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "game.js"), []byte("// game"), 0o600))

		cfg.StaticDir = dir
		app := BuildApp(cfg, nil)

		files := map[string]string{
			"/game":           "<html></html>",
			"/static/game.js": "// game",
		}

		for path, want := range files {
			req, err := http.NewRequest(http.MethodGet, path, nil)
			require.NoError(t, err)

			resp, err := app.Test(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			require.NoError(t, err)

			require.Equal(t, http.StatusOK, resp.StatusCode, path)
			require.Equal(t, want, string(body))
		}
	})
}
