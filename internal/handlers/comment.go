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

//go:generate mockgen -source=comment.go -destination=comment_mock.go -package=handlers

// Commenter adds comments to listings.
type Commenter interface {
	AddComment(ctx context.Context, title string, authorID uuid.UUID, content string) (*models.CommentDB, error)
}

// NewCommentHandler returns an HTTP handler that comments on a listing.
// @Summary Comment on a listing
// @Tags comments
// @Accept x-www-form-urlencoded
// @Produce html
// @Param title path string true "Listing title"
// @Param comments formData string true "Comment text"
// @Success 303 {string} string "Redirect to the listing page"
// @Failure 400 {string} string "Listing page with an error message"
// @Failure 404 {string} string "Listing not found"
// @Router /comment/{title} [post]
func NewCommentHandler(svc Commenter, pages ListingPageGetter, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		title := urlParam(r, "title")

		if _, err := svc.AddComment(r.Context(), title, claims.UserID, r.PostFormValue("comments")); err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				rd.Error(w, r, http.StatusNotFound, "Listing not found.")
			case errors.Is(err, services.ErrEmptyComment):
				renderListingPage(w, r, pages, rd, title, http.StatusBadRequest, "Comment must not be empty.")
			default:
				rd.ServerError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, listingPath(title), http.StatusSeeOther)
	}
}
