package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/middlewares"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

//go:generate mockgen -source=watchlist.go -destination=watchlist_mock.go -package=handlers

// WatchlistAdder adds listings to a user's watchlist.
type WatchlistAdder interface {
	Add(ctx context.Context, userID uuid.UUID, title string) (*models.ListingDB, error)
}

// NewWatchlistHandler returns an HTTP handler that watches a listing.
// @Summary Add to watchlist
// @Tags watchlist
// @Produce html
// @Param title path string true "Listing title"
// @Success 303 {string} string "Redirect to the user's home page"
// @Failure 400 {string} string "Listing page: already in the watchlist"
// @Failure 404 {string} string "Listing not found"
// @Router /watchlist/{title} [post]
func NewWatchlistHandler(svc WatchlistAdder, pages ListingPageGetter, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		title := urlParam(r, "title")

		if _, err := svc.Add(r.Context(), claims.UserID, title); err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				rd.Error(w, r, http.StatusNotFound, "Listing not found.")
			case errors.Is(err, services.ErrAlreadyInWatchlist):
				renderListingPage(w, r, pages, rd, title, http.StatusBadRequest, "This listing is already in your watchlist.")
			default:
				rd.ServerError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, "/home/"+claims.UserID.String(), http.StatusSeeOther)
	}
}
