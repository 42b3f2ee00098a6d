package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength bounds listing titles; titles are used as URL lookup keys.
const MaxTitleLength = 64

// ListingDB represents a listing row joined with its seller's username.
type ListingDB struct {
	ListingID    uuid.UUID `json:"listing_id" db:"listing_id"`
	SellerID     uuid.UUID `json:"seller_id" db:"seller_id"`
	SellerName   string    `json:"seller_name" db:"seller_name"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	StartingBid  int64     `json:"starting_bid" db:"starting_bid"`
	Category     string    `json:"category" db:"category"`
	Active       bool      `json:"active" db:"active"`
	PriceSoldFor *int64    `json:"price_sold_for,omitempty" db:"price_sold_for"` // set once, at close
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewListing carries the validated fields of the create-listing form.
type NewListing struct {
	Title       string
	Description string
	StartingBid int64
	Category    string
}

// ListingPage is everything the single-listing page shows.
type ListingPage struct {
	Listing    ListingDB
	Comments   []CommentDB
	HighestBid *BidDB
	BidCount   int
}

// UserHome groups a user's listings by state together with their watchlist.
type UserHome struct {
	User      UserDB
	Active    []ListingDB
	Ended     []ListingDB
	Watchlist []ListingDB
}

// CloseResult is the outcome of closing a listing. WinningBid is nil when
// the listing received no bids.
type CloseResult struct {
	Listing    ListingDB
	WinningBid *BidDB
}
