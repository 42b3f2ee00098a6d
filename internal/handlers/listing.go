package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=handlers

// ListingPageGetter loads everything the listing page shows.
type ListingPageGetter interface {
	GetListingPage(ctx context.Context, title string) (*models.ListingPage, error)
}

// NewListingHandler returns an HTTP handler for a single listing.
// @Summary Listing page
// @Description Shows a listing, its bids summary and comments.
// @Tags listings
// @Produce html
// @Param title path string true "Listing title"
// @Success 200 {string} string "Listing page"
// @Failure 404 {string} string "Listing not found"
// @Router /listing/{title} [get]
func NewListingHandler(svc ListingPageGetter, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderListingPage(w, r, svc, rd, urlParam(r, "title"), http.StatusOK, "")
	}
}

// renderListingPage renders the listing page with an optional inline
// message, as used when a bid, comment or watchlist action is rejected.
func renderListingPage(w http.ResponseWriter, r *http.Request, svc ListingPageGetter, rd *Renderer, title string, status int, message string) {
	page, err := svc.GetListingPage(r.Context(), title)
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			rd.Error(w, r, http.StatusNotFound, "Listing not found.")
			return
		}
		rd.ServerError(w, r, err)
		return
	}

	rd.Render(w, r, status, "listing", PageData{Listing: page, Message: message})
}
