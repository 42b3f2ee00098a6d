package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

//go:generate mockgen -source=home.go -destination=home_mock.go -package=handlers

// HomeGetter loads a user's home page.
type HomeGetter interface {
	GetUserHome(ctx context.Context, userID uuid.UUID) (*models.UserHome, error)
}

// NewHomeHandler returns an HTTP handler for a user's home page.
// @Summary User home
// @Description Shows the user's active and ended listings and their watchlist.
// @Tags users
// @Produce html
// @Param user_id path string true "User ID"
// @Success 200 {string} string "Home page"
// @Failure 404 {string} string "Unknown user"
// @Router /home/{user_id} [get]
func NewHomeHandler(svc HomeGetter, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(urlParam(r, "user_id"))
		if err != nil {
			rd.Error(w, r, http.StatusNotFound, "User not found.")
			return
		}

		home, err := svc.GetUserHome(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				rd.Error(w, r, http.StatusNotFound, "User not found.")
				return
			}
			rd.ServerError(w, r, err)
			return
		}

		rd.Render(w, r, http.StatusOK, "home", PageData{Home: home})
	}
}
