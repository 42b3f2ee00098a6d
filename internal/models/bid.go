package models

import (
	"time"

	"github.com/google/uuid"
)

// BidDB represents an immutable offer on a listing.
type BidDB struct {
	BidID      uuid.UUID `json:"bid_id" db:"bid_id"`
	ListingID  uuid.UUID `json:"listing_id" db:"listing_id"`
	BidderID   uuid.UUID `json:"bidder_id" db:"bidder_id"`
	BidderName string    `json:"bidder_name" db:"bidder_name"`
	Offer      int64     `json:"offer" db:"offer"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
