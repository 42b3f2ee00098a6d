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

//go:generate mockgen -source=close.go -destination=close_mock.go -package=handlers

// ListingCloser closes auctions.
type ListingCloser interface {
	CloseListing(ctx context.Context, title string, requesterID uuid.UUID) (*models.CloseResult, error)
}

// NewCloseHandler returns an HTTP handler that closes a listing owned by the
// signed-in user.
// @Summary Close a listing
// @Description Ends the auction at the highest bid, or at 0 without bids. Only the seller may close.
// @Tags bidding
// @Produce html
// @Param title path string true "Listing title"
// @Success 200 {string} string "Close confirmation page"
// @Failure 403 {string} string "Not the seller"
// @Failure 404 {string} string "Listing not found"
// @Router /close/{title} [post]
func NewCloseHandler(svc ListingCloser, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		result, err := svc.CloseListing(r.Context(), urlParam(r, "title"), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				rd.Error(w, r, http.StatusNotFound, "Listing not found.")
			case errors.Is(err, services.ErrNotListingOwner):
				rd.Error(w, r, http.StatusForbidden, "Only the seller can close this listing.")
			default:
				rd.ServerError(w, r, err)
			}
			return
		}

		rd.Render(w, r, http.StatusOK, "close", PageData{Closed: result})
	}
}
