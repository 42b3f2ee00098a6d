package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/middlewares"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

//go:generate mockgen -source=bid.go -destination=bid_mock.go -package=handlers

const bidRejectedMessage = "Cannot bid lower than the listing price nor existing bids."

// BidPlacer places bids.
type BidPlacer interface {
	PlaceBid(ctx context.Context, title string, bidderID uuid.UUID, offer int64) (*models.BidDB, error)
}

// NewBidHandler returns an HTTP handler that places a bid for the signed-in user.
// @Summary Place a bid
// @Description The offer must be at least the starting bid and at least the current highest bid.
// @Tags bidding
// @Accept x-www-form-urlencoded
// @Produce html
// @Param title path string true "Listing title"
// @Param bid formData integer true "Offer"
// @Success 303 {string} string "Redirect to the bidder's home page"
// @Failure 400 {string} string "Listing page with an error message"
// @Failure 404 {string} string "Listing not found"
// @Router /bid/{title} [post]
func NewBidHandler(svc BidPlacer, pages ListingPageGetter, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		title := urlParam(r, "title")

		offer, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("bid")), 10, 64)
		if err != nil {
			renderListingPage(w, r, pages, rd, title, http.StatusBadRequest, "Please enter a whole number as your bid.")
			return
		}

		_, err = svc.PlaceBid(r.Context(), title, claims.UserID, offer)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				rd.Error(w, r, http.StatusNotFound, "Listing not found.")
			case errors.Is(err, services.ErrBidBelowStartingPrice),
				errors.Is(err, services.ErrBidBelowHighestBid):
				renderListingPage(w, r, pages, rd, title, http.StatusBadRequest, bidRejectedMessage)
			case errors.Is(err, services.ErrListingClosed):
				renderListingPage(w, r, pages, rd, title, http.StatusBadRequest, "This listing is closed.")
			default:
				rd.ServerError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, "/home/"+claims.UserID.String(), http.StatusSeeOther)
	}
}
