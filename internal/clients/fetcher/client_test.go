package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/clients/fetcher"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/config"
)

func testClient(maxBody int64) *fetcher.Client {
	return fetcher.NewClient(config.ProxyConfig{
		Timeout:       5 * time.Second,
		RetryAttempts: 0,
		MaxBodyBytes:  maxBody,
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("file contents"))
	}))
	t.Cleanup(srv.Close)

	body, err := testClient(1 << 20).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, []byte("file contents"), body)
}

func TestClient_Fetch_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := testClient(1 << 20).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 404")
}

func TestClient_Fetch_BodyLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, 1024))
	}))
	t.Cleanup(srv.Close)

	body, err := testClient(16).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, body, 16)
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := testClient(1 << 20).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}
