package handlers

import (
	"context"
	"net/http"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

//go:generate mockgen -source=index.go -destination=index_mock.go -package=handlers

// ListingBrowser lists listings and categories.
type ListingBrowser interface {
	ListListings(ctx context.Context) ([]models.ListingDB, error)
	ListByCategory(ctx context.Context, category string) ([]models.ListingDB, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// NewIndexHandler returns an HTTP handler for the listings index.
// @Summary All listings
// @Description Lists every listing together with the categories in use.
// @Tags listings
// @Produce html
// @Success 200 {string} string "Index page"
// @Failure 500 {string} string "Internal server error"
// @Router / [get]
func NewIndexHandler(svc ListingBrowser, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		listings, err := svc.ListListings(ctx)
		if err != nil {
			rd.ServerError(w, r, err)
			return
		}
		categories, err := svc.ListCategories(ctx)
		if err != nil {
			rd.ServerError(w, r, err)
			return
		}

		rd.Render(w, r, http.StatusOK, "index", PageData{
			Listings:   listings,
			Categories: categories,
		})
	}
}

// NewCategoryHandler returns an HTTP handler listing one category.
// @Summary Listings by category
// @Tags listings
// @Produce html
// @Param category path string true "Category"
// @Success 200 {string} string "Category page"
// @Failure 500 {string} string "Internal server error"
// @Router /category/{category} [get]
func NewCategoryHandler(svc ListingBrowser, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		category := urlParam(r, "category")

		listings, err := svc.ListByCategory(ctx, category)
		if err != nil {
			rd.ServerError(w, r, err)
			return
		}
		categories, err := svc.ListCategories(ctx)
		if err != nil {
			rd.ServerError(w, r, err)
			return
		}

		rd.Render(w, r, http.StatusOK, "index", PageData{
			Heading:    "Category: " + category,
			Listings:   listings,
			Categories: categories,
		})
	}
}
