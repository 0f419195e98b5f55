package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Tokens: staticTokens("tok-123")})
	var out map[string]interface{}
	require.NoError(t, c.Get(context.Background(), "/x", &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorizedFiresHookWithoutRetry(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var hookCalls int
	c := New(Config{
		BaseURL:        srv.URL,
		OnUnauthorized: func() { hookCalls++ },
	})

	err := c.Post(context.Background(), "/cart/items", map[string]int{"quantity": 1}, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, hookCalls)
	assert.EqualValues(t, 1, requests, "a 401 must not trigger a resubmit")
}

func TestErrorBodyDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Quantity must be a positive integer"}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	err := c.Put(context.Background(), "/cart/items/p1", map[string]int{"quantity": 0}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Quantity must be a positive integer", apiErr.Message)
}

func TestDeleteAcceptsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	require.NoError(t, c.Delete(context.Background(), "/cart/items/p1"))
}
