package http_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/crawlkit"
	crawlhttp "github.com/fwojciec/crawlkit/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nethttp "net/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := crawlhttp.NewFetcher()
		defer f.Close()

		content, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", content)
	})

	t.Run("sends user agent header", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Write([]byte("ok"))
		}))
		defer srv.Close()

		f := crawlhttp.NewFetcher(crawlhttp.WithUserAgent("testbot/2.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "testbot/2.0", gotUA)
	})

	t.Run("maps 404 to not found", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		f := crawlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, crawlkit.ENOTFOUND, crawlkit.ErrorCode(err))
	})

	t.Run("maps 500 to unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
		}))
		defer srv.Close()

		f := crawlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, crawlkit.EUNAVAILABLE, crawlkit.ErrorCode(err))
	})

	t.Run("maps 429 to unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusTooManyRequests)
		}))
		defer srv.Close()

		f := crawlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, crawlkit.EUNAVAILABLE, crawlkit.ErrorCode(err))
	})

	t.Run("maps transport error to unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
		srv.Close() // connection refused from here on

		f := crawlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, crawlkit.EUNAVAILABLE, crawlkit.ErrorCode(err))
	})

	t.Run("rejects invalid URL", func(t *testing.T) {
		t.Parallel()

		f := crawlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "://not-a-url")
		require.Error(t, err)
		assert.Equal(t, crawlkit.EINVALID, crawlkit.ErrorCode(err))
	})

	t.Run("honors timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(500 * time.Millisecond)
			w.Write([]byte("too late"))
		}))
		defer srv.Close()

		f := crawlhttp.NewFetcher(crawlhttp.WithTimeout(50 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, crawlkit.EUNAVAILABLE, crawlkit.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer srv.Close()

		f := crawlhttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, srv.URL)
		require.Error(t, err)
	})
}
