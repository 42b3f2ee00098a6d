package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/middlewares"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Logouter revokes a session.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler that ends the session and
// redirects to the index page.
// @Summary Log out
// @Description Revokes the current session token and clears the session cookie.
// @Tags auth
// @Success 303 {string} string "Redirect to the index page"
// @Router /logout [get]
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims := middlewares.ClaimsFromContext(r.Context()); claims != nil {
			if err := svc.Logout(r.Context(), claims.ID, claims.ExpiresAt); err != nil {
				// The cookie is still cleared below; the token stays valid
				// for bearer use until it expires.
				logger.Log.Errorw("failed to revoke session on logout", "user_id", claims.UserID, "err", err)
			}
		}

		cookie.clear(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
