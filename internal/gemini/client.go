// Package gemini is a thin client for the generative-language API used by
// the first-aid assistant. Every failure mode degrades to a descriptive
// fallback string so the calling request never fails on assistant
// unavailability.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const generatePath = "/v1beta/models/gemini-1.5-flash:generateContent"

// Client calls the text-generation service with a bounded timeout.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. An empty apiKey is allowed; Generate then
// returns the missing-key fallback without calling out.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt to the service and returns the generated text.
// On missing credentials, service error, or network failure it returns a
// fallback string describing the failure instead of an error.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	if c.apiKey == "" {
		return "Gemini API key missing."
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return fmt.Sprintf("Gemini request failed: %v", err)
	}

	url := fmt.Sprintf("%s%s?key=%s", c.baseURL, generatePath, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Sprintf("Gemini request failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Sprintf("Gemini request failed: %v", err)
	}
	defer resp.Body.Close()

	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return fmt.Sprintf("Gemini request failed: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := data.Error.Message
		if detail == "" {
			detail = "Gemini API error"
		}
		return "Gemini API error: " + detail
	}

	if len(data.Candidates) > 0 && len(data.Candidates[0].Content.Parts) > 0 {
		if text := data.Candidates[0].Content.Parts[0].Text; text != "" {
			return text
		}
	}
	return "No response received from Gemini."
}
