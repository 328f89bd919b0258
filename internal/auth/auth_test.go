package auth

import (
	"context"
	"testing"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/stretchr/testify/assert"
)

// fakePage scripts the detector's view of the session.
type fakePage struct {
	cookies     []*network.Cookie
	cookieErr   error
	markerHits  map[string]int
	countErr    error
	cookieCalls int
}

func (f *fakePage) Cookies() ([]*network.Cookie, error) {
	f.cookieCalls++
	return f.cookies, f.cookieErr
}

func (f *fakePage) NodeCount(selector string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.markerHits[selector], nil
}

func TestIsAuthCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cookie string
		domain string
		want   bool
	}{
		{"auth token on x.com", "auth_token", ".x.com", true},
		{"ct0 on x.com", "ct0", "x.com", true},
		{"auth token on wrong domain", "auth_token", ".example.com", false},
		{"unrelated cookie on x.com", "guest_id", ".x.com", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsAuthCookie(tt.cookie, tt.domain))
		})
	}
}

func TestDetectLoginViaCookie(t *testing.T) {
	t.Parallel()

	page := &fakePage{
		cookies: []*network.Cookie{
			{Name: "guest_id", Domain: ".x.com"},
			{Name: "auth_token", Domain: ".x.com"},
		},
	}

	start := time.Now()
	ok := DetectLogin(context.Background(), page, 10*time.Second)
	assert.True(t, ok)
	assert.Less(t, time.Since(start), time.Second, "first probe should already succeed")
}

func TestDetectLoginViaDOMMarker(t *testing.T) {
	t.Parallel()

	page := &fakePage{
		markerHits: map[string]int{
			`a[aria-label="Profile"]`: 1,
		},
	}

	assert.True(t, DetectLogin(context.Background(), page, 10*time.Second))
}

func TestDetectLoginTimeout(t *testing.T) {
	t.Parallel()

	page := &fakePage{}
	ok := DetectLogin(context.Background(), page, 50*time.Millisecond)
	assert.False(t, ok, "no signal within the bound returns false, not an error")
}

func TestDetectLoginSurvivesProbeErrors(t *testing.T) {
	t.Parallel()

	page := &fakePage{
		cookieErr: assert.AnError,
		countErr:  assert.AnError,
	}

	assert.False(t, DetectLogin(context.Background(), page, 50*time.Millisecond))
	assert.GreaterOrEqual(t, page.cookieCalls, 1)
}

func TestDetectLoginCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, DetectLogin(ctx, &fakePage{}, 10*time.Second))
}
