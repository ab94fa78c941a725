package commands_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/sonar-select/internal/catalog"
	"github.com/ruminaider/sonar-select/internal/config"
	"github.com/stretchr/testify/require"
)

// fakeSonar serves entries from a single search_projects page.
func fakeSonar(t *testing.T, entries ...catalog.Entry) *httptest.Server {
	t.Helper()
	if entries == nil {
		entries = []catalog.Entry{}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"components": entries,
			"paging":     map[string]int{"pageIndex": 1, "pageSize": 100, "total": len(entries)},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// writeConfig writes cfg to a temp dir and returns its path.
func writeConfig(t *testing.T, cfg config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sonar-select.yaml")
	data, err := config.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func readConfig(t *testing.T, path string) config.Config {
	t.Helper()
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func noEnv(string) string { return "" }
