package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/jwt"
)

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next     string
		expected string
	}{
		{"", "/"},
		{"/create_listing", "/create_listing"},
		{"/listing/Desk%20Lamp", "/listing/Desk%20Lamp"},
		{"/home/abc?tab=watchlist", "/home/abc?tab=watchlist"},
		{"https://evil.example/", "/"},
		{"//evil.example/", "/"},
		{"/\\evil.example", "/"},
		{"create_listing", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			assert.Equal(t, tt.expected, safeNext(tt.next))
		})
	}
}

func TestListingPath(t *testing.T) {
	assert.Equal(t, "/listing/Lamp", listingPath("Lamp"))
	assert.Equal(t, "/listing/Desk%20Lamp", listingPath("Desk Lamp"))
	assert.Equal(t, "/listing/AC%2FDC%20poster", listingPath("AC/DC poster"))
}

func TestURLParam(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{"plain", "/listing/Lamp", "Lamp"},
		{"space", "/listing/Desk%20Lamp", "Desk Lamp"},
		{"escaped slash", "/listing/AC%2FDC%20poster", "AC/DC poster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := func(w http.ResponseWriter, r *http.Request) {
				got = urlParam(r, "title")
			}
			w := serveRoute(http.MethodGet, "/listing/{title}", h, httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSessionCookie(t *testing.T) {
	c := SessionCookie{Secure: true, MaxAge: time.Hour}

	w := httptest.NewRecorder()
	c.set(w, "TOKEN")
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, jwt.CookieName, cookies[0].Name)
	assert.Equal(t, "TOKEN", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	w = httptest.NewRecorder()
	c.clear(w)
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
