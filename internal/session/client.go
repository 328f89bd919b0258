// Package session provides a minimal Browserbase REST client covering the
// three calls tagpulse needs: create a reusable context, create a session
// bound to that context, and release the session when the run ends.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.browserbase.com"

// Client talks to the Browserbase API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a Browserbase API client.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 60 * time.Second, // session creation waits for a browser to boot
		},
	}
}

// NewWithBaseURL creates a client against a non-default API endpoint.
// Used by tests.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = baseURL
	return c
}

// Session describes a live Browserbase browser session.
type Session struct {
	ID         string `json:"id"`
	ConnectURL string `json:"connectUrl"`
	Status     string `json:"status"`
}

// browserSettings mirrors the session-create request shape. The mobile
// fingerprint and viewport make X serve the lighter mobile markup.
type browserSettings struct {
	Context     contextSettings     `json:"context"`
	Fingerprint fingerprintSettings `json:"fingerprint"`
	Viewport    viewportSettings    `json:"viewport"`
}

type contextSettings struct {
	ID      string `json:"id"`
	Persist bool   `json:"persist"`
}

type fingerprintSettings struct {
	Devices          []string `json:"devices"`
	Browsers         []string `json:"browsers"`
	OperatingSystems []string `json:"operatingSystems"`
}

type viewportSettings struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CreateContext creates a new persistent browser context in the given
// project and returns its ID. Contexts carry cookies across sessions, so a
// manual login survives between runs.
func (c *Client) CreateContext(ctx context.Context, projectID string) (string, error) {
	body := map[string]string{"projectId": projectID}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/v1/contexts", body, &resp); err != nil {
		return "", fmt.Errorf("failed to create context: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("context create response missing id")
	}
	return resp.ID, nil
}

// CreateSession starts a browser session bound to the given context with a
// mobile Android/Chrome fingerprint and a 390x844 viewport.
func (c *Client) CreateSession(ctx context.Context, projectID, contextID string) (*Session, error) {
	body := map[string]any{
		"projectId": projectID,
		"browserSettings": browserSettings{
			Context: contextSettings{ID: contextID, Persist: true},
			Fingerprint: fingerprintSettings{
				Devices:          []string{"mobile"},
				Browsers:         []string{"chrome"},
				OperatingSystems: []string{"android"},
			},
			Viewport: viewportSettings{Width: 390, Height: 844},
		},
	}

	var sess Session
	if err := c.post(ctx, "/v1/sessions", body, &sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if sess.ID == "" || sess.ConnectURL == "" {
		return nil, fmt.Errorf("session create response missing id or connectUrl")
	}
	return &sess, nil
}

// Release requests release of a session's browser. Callers treat a failure
// here as non-fatal: the session times out server-side regardless.
func (c *Client) Release(ctx context.Context, projectID, sessionID string) error {
	body := map[string]string{
		"projectId": projectID,
		"status":    "REQUEST_RELEASE",
	}
	if err := c.post(ctx, "/v1/sessions/"+sessionID, body, nil); err != nil {
		return fmt.Errorf("failed to release session %s: %w", sessionID, err)
	}
	return nil
}

// post sends a JSON POST and decodes the JSON response into out (when out is
// non-nil).
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-BB-API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("browserbase API returned %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
