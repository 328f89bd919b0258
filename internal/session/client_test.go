package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/contexts", r.URL.Path)
		assert.Equal(t, "key123", r.Header.Get("X-BB-API-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "proj1", body["projectId"])

		json.NewEncoder(w).Encode(map[string]string{"id": "ctx789"})
	}))
	defer srv.Close()

	c := NewWithBaseURL("key123", srv.URL)
	id, err := c.CreateContext(context.Background(), "proj1")
	require.NoError(t, err)
	assert.Equal(t, "ctx789", id)
}

func TestCreateSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions", r.URL.Path)

		var body struct {
			ProjectID       string          `json:"projectId"`
			BrowserSettings browserSettings `json:"browserSettings"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "proj1", body.ProjectID)
		assert.Equal(t, "ctx789", body.BrowserSettings.Context.ID)
		assert.True(t, body.BrowserSettings.Context.Persist)
		assert.Equal(t, []string{"mobile"}, body.BrowserSettings.Fingerprint.Devices)
		assert.Equal(t, 390, body.BrowserSettings.Viewport.Width)
		assert.Equal(t, 844, body.BrowserSettings.Viewport.Height)

		json.NewEncoder(w).Encode(Session{
			ID:         "sess42",
			ConnectURL: "wss://connect.example/devtools",
			Status:     "RUNNING",
		})
	}))
	defer srv.Close()

	c := NewWithBaseURL("key123", srv.URL)
	sess, err := c.CreateSession(context.Background(), "proj1", "ctx789")
	require.NoError(t, err)
	assert.Equal(t, "sess42", sess.ID)
	assert.Equal(t, "wss://connect.example/devtools", sess.ConnectURL)
}

func TestCreateSessionMissingConnectURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "sess42"})
	}))
	defer srv.Close()

	c := NewWithBaseURL("key123", srv.URL)
	_, err := c.CreateSession(context.Background(), "proj1", "ctx789")
	assert.Error(t, err)
}

func TestRelease(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions/sess42", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "REQUEST_RELEASE", body["status"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewWithBaseURL("key123", srv.URL)
	assert.NoError(t, c.Release(context.Background(), "proj1", "sess42"))
}

func TestAPIErrorSurfacesBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewWithBaseURL("badkey", srv.URL)
	_, err := c.CreateContext(context.Background(), "proj1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "unauthorized")
}
