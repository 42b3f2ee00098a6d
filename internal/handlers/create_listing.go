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

//go:generate mockgen -source=create_listing.go -destination=create_listing_mock.go -package=handlers

// ListingCreator creates listings.
type ListingCreator interface {
	CreateListing(ctx context.Context, sellerID uuid.UUID, in models.NewListing) (*models.ListingDB, error)
}

// NewCreateListingPageHandler returns an HTTP handler that shows the new listing form.
// @Summary New listing form
// @Tags listings
// @Produce html
// @Success 200 {string} string "Create listing page"
// @Success 302 {string} string "Redirect to login when not signed in"
// @Router /create_listing [get]
func NewCreateListingPageHandler(rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "create_listing", PageData{})
	}
}

// NewCreateListingHandler returns an HTTP handler that creates a listing
// owned by the signed-in user.
// @Summary Create a listing
// @Tags listings
// @Accept x-www-form-urlencoded
// @Produce html
// @Param title formData string true "Unique title, at most 64 characters"
// @Param description formData string true "Description"
// @Param starting_bid formData integer true "Starting price"
// @Param category formData string true "Category"
// @Success 303 {string} string "Redirect to the index page"
// @Failure 400 {string} string "Form with an error message"
// @Failure 500 {string} string "Internal server error"
// @Router /create_listing [post]
func NewCreateListingHandler(svc ListingCreator, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())

		if err := r.ParseForm(); err != nil {
			rd.Render(w, r, http.StatusBadRequest, "create_listing", PageData{Message: "Invalid form submission."})
			return
		}
		form := r.PostForm

		startingBid, err := strconv.ParseInt(strings.TrimSpace(form.Get("starting_bid")), 10, 64)
		if err != nil || startingBid < 0 {
			rd.Render(w, r, http.StatusBadRequest, "create_listing", PageData{
				Message: "Starting price must be a whole number of at least 0.",
				Form:    form,
			})
			return
		}

		_, err = svc.CreateListing(r.Context(), claims.UserID, models.NewListing{
			Title:       form.Get("title"),
			Description: form.Get("description"),
			StartingBid: startingBid,
			Category:    form.Get("category"),
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingTitleTaken):
				rd.Render(w, r, http.StatusBadRequest, "create_listing", PageData{
					Message: "A listing with this title already exists.",
					Form:    form,
				})
			case errors.Is(err, services.ErrInvalidListing):
				rd.Render(w, r, http.StatusBadRequest, "create_listing", PageData{
					Message: "Please check the form: " + strings.TrimPrefix(err.Error(), services.ErrInvalidListing.Error()+": ") + ".",
					Form:    form,
				})
			default:
				rd.ServerError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
