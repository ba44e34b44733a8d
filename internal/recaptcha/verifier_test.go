package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyNoSecretIsNoOpSuccess(t *testing.T) {
	v := NewVerifier("", "http://unused", time.Second)
	assert.True(t, v.Verify(context.Background(), ""))
	assert.True(t, v.Verify(context.Background(), "any-token"))
}

func TestVerifyMissingTokenFails(t *testing.T) {
	v := NewVerifier("secret", "http://unused", time.Second)
	assert.False(t, v.Verify(context.Background(), ""))
}

func TestVerifySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "secret", r.PostForm.Get("secret"))
		require.Equal(t, "token123", r.PostForm.Get("response"))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	v := NewVerifier("secret", server.URL, time.Second)
	assert.True(t, v.Verify(context.Background(), "token123"))
}

func TestVerifyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false}`))
	}))
	defer server.Close()

	v := NewVerifier("secret", server.URL, time.Second)
	assert.False(t, v.Verify(context.Background(), "token123"))
}

func TestVerifyNetworkFailureFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	v := NewVerifier("secret", server.URL, time.Second)
	assert.False(t, v.Verify(context.Background(), "token123"))
}
