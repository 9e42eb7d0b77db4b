// Package aiproxy is the opaque HTTP client for the text-to-audio
// collaborator (spec.md §1, §6, §7 UpstreamUnavailable). The core
// packages (harmony, voicing, satb) never import this package — it is
// wired only by the api handler for /generate_ai_music.
package aiproxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a thin, opaque client for a Replicate-style text-to-audio endpoint.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// New builds a Client. baseURL and apiKey come from config.Config.
func New(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Input map[string]string `json:"input"`
}

type generateResponse struct {
	Output string `json:"output"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

// ErrUpstreamUnavailable is returned when the collaborator cannot be reached or errors.
var ErrUpstreamUnavailable = fmt.Errorf("aiproxy: text-to-audio service unavailable")

// GenerateMusic forwards the chord progression and key to the
// text-to-audio collaborator with a templated natural-language prompt
// and returns the resulting audio URL.
func (c *Client) GenerateMusic(ctx context.Context, progression []string, keyName string) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("%w: no credential configured", ErrUpstreamUnavailable)
	}

	prompt := fmt.Sprintf(
		"a chord progression in %s: %s, instrumental, high quality",
		keyName, strings.Join(progression, " - "),
	)

	body, err := json.Marshal(generateRequest{Input: map[string]string{"prompt": prompt}})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstreamUnavailable, resp.StatusCode, string(data))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if out.Output != "" {
		return out.Output, nil
	}
	return out.URLs.Get, nil
}
