package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/jwt"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/middlewares"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

var (
	aliceID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bobID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rd, err := NewRenderer()
	require.NoError(t, err)
	return rd
}

func claimsFor(id uuid.UUID, username string) *jwt.Claims {
	return &jwt.Claims{
		ID:        "jti-" + username,
		UserID:    id,
		Username:  username,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func newFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withClaims(req *http.Request, claims *jwt.Claims) *http.Request {
	if claims == nil {
		return req
	}
	return req.WithContext(middlewares.WithClaims(req.Context(), claims))
}

// serveRoute runs h behind a chi route so that path parameters resolve.
func serveRoute(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleListing(seller uuid.UUID, active bool) models.ListingDB {
	l := models.ListingDB{
		ListingID:   uuid.New(),
		SellerID:    seller,
		SellerName:  "alice",
		Title:       "Lamp",
		Description: "A brass desk lamp",
		StartingBid: 10,
		Category:    "Home",
		Active:      active,
	}
	if !active {
		price := int64(25)
		l.PriceSoldFor = &price
	}
	return l
}

func samplePage(seller uuid.UUID, active bool) *models.ListingPage {
	return &models.ListingPage{Listing: sampleListing(seller, active)}
}
