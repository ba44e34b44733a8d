package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMissingKeyFallback(t *testing.T) {
	client := NewClient("", "http://unused", time.Second)
	assert.Equal(t, "Gemini API key missing.", client.Generate(context.Background(), "help"))
}

func TestGenerateSuccess(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		require.NotEmpty(t, req.Contents[0].Parts)
		gotPrompt = req.Contents[0].Parts[0].Text

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "apply pressure to the wound"}}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	resp := client.Generate(context.Background(), "deep cut on hand")
	assert.Equal(t, "apply pressure to the wound", resp)
	assert.Equal(t, "deep cut on hand", gotPrompt)
}

func TestGenerateAPIErrorFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "quota exceeded"},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	assert.Equal(t, "Gemini API error: quota exceeded", client.Generate(context.Background(), "help"))
}

func TestGenerateAPIErrorWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	assert.Equal(t, "Gemini API error: Gemini API error", client.Generate(context.Background(), "help"))
}

func TestGenerateNetworkFailureFallback(t *testing.T) {
	// Point at a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	resp := client.Generate(context.Background(), "help")
	assert.Contains(t, resp, "Gemini request failed:")
}

func TestGenerateEmptyCandidatesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, time.Second)
	assert.Equal(t, "No response received from Gemini.", client.Generate(context.Background(), "help"))
}
