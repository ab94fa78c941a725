package sonar_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/ruminaider/sonar-select/internal/catalog"
	"github.com/ruminaider/sonar-select/internal/sonar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedServer serves total projects named p000, p001, ... in pages.
func pagedServer(t *testing.T, total int, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/components/search_projects", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		page, _ := strconv.Atoi(r.URL.Query().Get("p"))
		size, _ := strconv.Atoi(r.URL.Query().Get("ps"))
		var comps []catalog.Entry
		for i := (page - 1) * size; i < page*size && i < total; i++ {
			comps = append(comps, catalog.Entry{Key: fmt.Sprintf("p%03d", i), Name: fmt.Sprintf("Project %d", i)})
		}
		if comps == nil {
			comps = []catalog.Entry{}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"components": comps,
			"paging":     map[string]int{"pageIndex": page, "pageSize": size, "total": total},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAllPaginates(t *testing.T) {
	var calls atomic.Int32
	srv := pagedServer(t, 250, &calls)

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 250)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "p000", entries[0].Key)
	assert.Equal(t, "p249", entries[249].Key)
}

func TestFetchAllExactPageBoundary(t *testing.T) {
	var calls atomic.Int32
	srv := pagedServer(t, 200, &calls)

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 200)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchAllEmptyCatalog(t *testing.T) {
	var calls atomic.Int32
	srv := pagedServer(t, 0, &calls)

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	var calls atomic.Int32
	srv := pagedServer(t, 3, &calls)

	c := sonar.New(srv.URL+"/", "secret", nil)
	assert.Equal(t, srv.URL, c.BaseURL)
	entries, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestFetchAllMalformedPageReturnsPartial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("p") == "1" {
			fmt.Fprint(w, `{"components":[{"key":"a"},{"key":"b"}],"paging":{"total":5}}`)
			return
		}
		fmt.Fprint(w, `{"components":[{"key":"c"}]}`)
	}))
	defer srv.Close()

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, catalog.Keys(entries))
}

func TestFetchAllMissingComponentsOnFirstPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"paging":{"total":5}}`)
	}))
	defer srv.Close()

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchAllNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>login</html>`)
	}))
	defer srv.Close()

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchAllUnderReportedTotalStopsEarly(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"components":[{"key":"a"},{"key":"b"}],"paging":{"total":1}}`)
	}))
	defer srv.Close()

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchAllOverReportedTotalStopsOnEmptyPage(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("p") == "1" {
			fmt.Fprint(w, `{"components":[{"key":"a"}],"paging":{"total":10}}`)
			return
		}
		fmt.Fprint(w, `{"components":[],"paging":{"total":10}}`)
	}))
	defer srv.Close()

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, catalog.Keys(entries))
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchAllAuthFailures(t *testing.T) {
	for _, tc := range []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, sonar.ErrUnauthorized},
		{http.StatusForbidden, sonar.ErrForbidden},
	} {
		t.Run(strconv.Itoa(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			entries, err := sonar.New(srv.URL, "bad", nil).FetchAll(context.Background())
			assert.Nil(t, entries)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, sonar.IsAuthError(err))
		})
	}
}

func TestFetchAllLaterPageFailureDiscardsPartial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("p") == "1" {
			fmt.Fprint(w, `{"components":[{"key":"a"}],"paging":{"total":2}}`)
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	entries, err := sonar.New(srv.URL, "secret", nil).FetchAll(context.Background())
	assert.Nil(t, entries)

	var statusErr *sonar.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "boom")
	assert.False(t, sonar.IsAuthError(err))
}

func TestFetchAllTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	entries, err := sonar.New(url, "secret", nil).FetchAll(context.Background())
	assert.Nil(t, entries)
	assert.Error(t, err)
	assert.False(t, sonar.IsAuthError(err))
}

func TestFetchAllHonoursContext(t *testing.T) {
	var calls atomic.Int32
	srv := pagedServer(t, 10, &calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sonar.New(srv.URL, "secret", nil).FetchAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchProjectsSendsPageSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("p"))
		assert.Equal(t, "100", r.URL.Query().Get("ps"))
		fmt.Fprint(w, `{"components":[],"paging":{"pageIndex":2,"pageSize":100,"total":0}}`)
	}))
	defer srv.Close()

	resp, err := sonar.New(srv.URL, "secret", nil).SearchProjects(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Paging.PageIndex)
	assert.Empty(t, resp.Components)
}

func TestMalformedPageLoggedAtDebugOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"components":[{"key":"k9"}]}`)
	}))
	defer srv.Close()

	fetch := func(level slog.Level) string {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
		entries, err := sonar.New(srv.URL, "secret", logger).FetchAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, entries)
		return buf.String()
	}

	debug := fetch(slog.LevelDebug)
	assert.Contains(t, debug, "malformed response")
	assert.Contains(t, debug, "k9")

	assert.Empty(t, fetch(slog.LevelWarn))
}
