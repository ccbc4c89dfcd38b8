package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeAddr(t *testing.T) {
	tests := []struct {
		listen string
		want   string
	}{
		{"", defaultAddr},
		{"garbage", defaultAddr},
		{"0.0.0.0:9000", "127.0.0.1:9000"},
		{"[::]:9000", "127.0.0.1:9000"},
		{":9000", "127.0.0.1:9000"},
		{"10.0.0.5:8080", "10.0.0.5:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.listen, func(t *testing.T) {
			assert.Equal(t, tt.want, probeAddr(tt.listen))
		})
	}
}

func probeServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/healthz"
}

func TestProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		url := probeServer(t, http.StatusOK, `{"status":"ok","account":"thinkmoving"}`)
		require.NoError(t, probe(ctx, http.DefaultClient, url))
	})

	t.Run("bad status code", func(t *testing.T) {
		url := probeServer(t, http.StatusServiceUnavailable, `{"status":"ok"}`)
		err := probe(ctx, http.DefaultClient, url)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("degraded body", func(t *testing.T) {
		url := probeServer(t, http.StatusOK, `{"status":"starting","account":"thinkmoving"}`)
		err := probe(ctx, http.DefaultClient, url)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "starting")
	})

	t.Run("not json", func(t *testing.T) {
		url := probeServer(t, http.StatusOK, `fine`)
		require.Error(t, probe(ctx, http.DefaultClient, url))
	})
}
