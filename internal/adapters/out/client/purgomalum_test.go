package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchenpos/internal/adapters/out/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgoMalumClient_ContainsProfanity(t *testing.T) {
	t.Run("should report profane text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/containsprofanity", r.URL.Path)
			assert.Equal(t, "some text", r.URL.Query().Get("text"))
			_, _ = w.Write([]byte("true"))
		}))
		defer srv.Close()

		c := client.NewPurgoMalumClient(srv.URL, srv.Client())
		profane, err := c.ContainsProfanity(context.Background(), "some text")

		require.NoError(t, err)
		assert.True(t, profane)
	})

	t.Run("should report clean text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("false\n"))
		}))
		defer srv.Close()

		c := client.NewPurgoMalumClient(srv.URL, srv.Client())
		profane, err := c.ContainsProfanity(context.Background(), "fried chicken")

		require.NoError(t, err)
		assert.False(t, profane)
	})

	t.Run("should fail on non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := client.NewPurgoMalumClient(srv.URL, srv.Client())
		_, err := c.ContainsProfanity(context.Background(), "fried chicken")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("should fail on unparseable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>maintenance</html>"))
		}))
		defer srv.Close()

		c := client.NewPurgoMalumClient(srv.URL, srv.Client())
		_, err := c.ContainsProfanity(context.Background(), "fried chicken")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected body")
	})

	t.Run("should escape query text", func(t *testing.T) {
		var gotText string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotText = r.URL.Query().Get("text")
			_, _ = w.Write([]byte("false"))
		}))
		defer srv.Close()

		c := client.NewPurgoMalumClient(srv.URL, srv.Client())
		_, err := c.ContainsProfanity(context.Background(), "fish & chips?")

		require.NoError(t, err)
		assert.Equal(t, "fish & chips?", gotText)
	})
}
