package models

// Auction event types published to Kafka.
const (
	EventListingCreated = "listing_created"
	EventBidPlaced      = "bid_placed"
	EventListingClosed  = "listing_closed"
)

// AuctionEvent is a state change of a listing, keyed by listing ID on the topic.
type AuctionEvent struct {
	EventID   string `json:"event_id"`   // Unique identifier of the event
	Type      string `json:"type"`       // One of the Event* constants
	Timestamp int64  `json:"timestamp"`  // Unix seconds
	ListingID string `json:"listing_id"` // Listing the event belongs to
	Title     string `json:"title"`      // Listing title at the time of the event
	UserID    string `json:"user_id"`    // Seller, bidder or closer
	Amount    int64  `json:"amount"`     // Starting bid, offer or final price
}
