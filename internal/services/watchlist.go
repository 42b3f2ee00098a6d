package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

//go:generate mockgen -source=watchlist.go -destination=watchlist_mock.go -package=services

var ErrAlreadyInWatchlist = errors.New("listing is already in the watchlist")

// WatchlistWriter adds (user, listing) pairs. It reports false when the pair
// already exists.
type WatchlistWriter interface {
	Add(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}

// WatchlistService manages user watchlists.
type WatchlistService struct {
	listings  ListingGetter
	watchlist WatchlistWriter
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(listings ListingGetter, watchlist WatchlistWriter) *WatchlistService {
	return &WatchlistService{listings: listings, watchlist: watchlist}
}

// Add puts the listing on the user's watchlist.
func (s *WatchlistService) Add(ctx context.Context, userID uuid.UUID, title string) (*models.ListingDB, error) {
	listing, err := s.listings.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	added, err := s.watchlist.Add(ctx, userID, listing.ListingID)
	if err != nil {
		logger.Log.Errorw("failed to add to watchlist", "user_id", userID, "listing_id", listing.ListingID, "error", err)
		return nil, err
	}
	if !added {
		return listing, ErrAlreadyInWatchlist
	}

	logger.Log.Infow("listing watched", "user_id", userID, "listing_id", listing.ListingID)
	return listing, nil
}
