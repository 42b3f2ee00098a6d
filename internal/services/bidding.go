package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

//go:generate mockgen -source=bidding.go -destination=bidding_mock.go -package=services

var (
	ErrListingClosed         = errors.New("listing is closed")
	ErrBidBelowStartingPrice = errors.New("bid is lower than the starting bid")
	ErrBidBelowHighestBid    = errors.New("bid is lower than the current highest bid")
	ErrNotListingOwner       = errors.New("only the seller can close this listing")
)

// ListingLocker reads a listing and holds its row lock for the rest of the
// request transaction.
type ListingLocker interface {
	GetByTitleForUpdate(ctx context.Context, title string) (*models.ListingDB, error)
}

// ListingCloser deactivates a listing. It reports false when the listing was
// already inactive.
type ListingCloser interface {
	Close(ctx context.Context, listingID uuid.UUID, priceSoldFor int64) (bool, error)
}

// BidWriter appends bids.
type BidWriter interface {
	Save(ctx context.Context, bid *models.BidDB) error
}

// BiddingService accepts bids and closes auctions.
type BiddingService struct {
	listings ListingLocker
	closer   ListingCloser
	bids     BidWriter
	highest  BidReader
	events   EventPublisher
}

// NewBiddingService creates a new BiddingService.
func NewBiddingService(
	listings ListingLocker,
	closer ListingCloser,
	bids BidWriter,
	highest BidReader,
	events EventPublisher,
) *BiddingService {
	return &BiddingService{
		listings: listings,
		closer:   closer,
		bids:     bids,
		highest:  highest,
		events:   events,
	}
}

// PlaceBid records an offer on an active listing. The offer must reach the
// starting bid and the current highest offer; matching the highest offer is
// allowed, and the earlier of two equal offers wins at close.
func (s *BiddingService) PlaceBid(ctx context.Context, title string, bidderID uuid.UUID, offer int64) (*models.BidDB, error) {
	listing, err := s.listings.GetByTitleForUpdate(ctx, title)
	if err != nil {
		logger.Log.Errorw("failed to load listing for bid", "title", title, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if !listing.Active {
		return nil, ErrListingClosed
	}
	if offer < listing.StartingBid {
		return nil, ErrBidBelowStartingPrice
	}

	highest, err := s.highest.GetHighestByListing(ctx, listing.ListingID)
	if err != nil {
		logger.Log.Errorw("failed to load highest bid", "listing_id", listing.ListingID, "error", err)
		return nil, err
	}
	if highest != nil && offer < highest.Offer {
		return nil, ErrBidBelowHighestBid
	}

	bid := &models.BidDB{
		BidID:     uuid.New(),
		ListingID: listing.ListingID,
		BidderID:  bidderID,
		Offer:     offer,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.bids.Save(ctx, bid); err != nil {
		logger.Log.Errorw("failed to save bid", "listing_id", listing.ListingID, "error", err)
		return nil, err
	}

	logger.Log.Infow("bid placed", "listing_id", listing.ListingID, "bidder_id", bidderID, "offer", offer)
	s.events.Publish(ctx, models.AuctionEvent{
		Type:      models.EventBidPlaced,
		ListingID: listing.ListingID.String(),
		Title:     listing.Title,
		UserID:    bidderID.String(),
		Amount:    offer,
	})

	return bid, nil
}

// CloseListing ends the auction. Only the seller may close it. The final
// price is the highest offer, or 0 without bids. Closing an already closed
// listing returns its stored outcome and changes nothing.
func (s *BiddingService) CloseListing(ctx context.Context, title string, requesterID uuid.UUID) (*models.CloseResult, error) {
	listing, err := s.listings.GetByTitleForUpdate(ctx, title)
	if err != nil {
		logger.Log.Errorw("failed to load listing for close", "title", title, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.SellerID != requesterID {
		return nil, ErrNotListingOwner
	}

	highest, err := s.highest.GetHighestByListing(ctx, listing.ListingID)
	if err != nil {
		logger.Log.Errorw("failed to load highest bid", "listing_id", listing.ListingID, "error", err)
		return nil, err
	}

	if !listing.Active {
		return &models.CloseResult{Listing: *listing, WinningBid: highest}, nil
	}

	var price int64
	if highest != nil {
		price = highest.Offer
	}

	closed, err := s.closer.Close(ctx, listing.ListingID, price)
	if err != nil {
		logger.Log.Errorw("failed to close listing", "listing_id", listing.ListingID, "error", err)
		return nil, err
	}
	if !closed {
		// Someone else closed it between our read and write.
		current, err := s.listings.GetByTitleForUpdate(ctx, title)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrListingNotFound
		}
		return &models.CloseResult{Listing: *current, WinningBid: highest}, nil
	}

	listing.Active = false
	listing.PriceSoldFor = &price

	logger.Log.Infow("listing closed", "listing_id", listing.ListingID, "price_sold_for", price)
	event := models.AuctionEvent{
		Type:      models.EventListingClosed,
		ListingID: listing.ListingID.String(),
		Title:     listing.Title,
		UserID:    requesterID.String(),
		Amount:    price,
	}
	s.events.Publish(ctx, event)

	return &models.CloseResult{Listing: *listing, WinningBid: highest}, nil
}
