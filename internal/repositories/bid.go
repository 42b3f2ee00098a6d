package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

// BidRepository stores append-only bids.
type BidRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBidRepository(db *sqlx.DB, txGetter TxGetter) *BidRepository {
	return &BidRepository{db: db, txGetter: txGetter}
}

// Save inserts a bid. Bids are never updated.
func (r *BidRepository) Save(ctx context.Context, bid *models.BidDB) error {
	const query = `
		INSERT INTO bids (bid_id, listing_id, bidder_id, offer, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{bid.BidID, bid.ListingID, bid.BidderID, bid.Offer, bid.CreatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, err == nil, err)

	return mapError(err)
}

// GetHighestByListing returns the highest offer on the listing; among equal
// offers the earliest wins. It returns nil, nil when there are no bids.
func (r *BidRepository) GetHighestByListing(ctx context.Context, listingID uuid.UUID) (*models.BidDB, error) {
	const query = `
		SELECT b.bid_id, b.listing_id, b.bidder_id, u.username AS bidder_name, b.offer, b.created_at
		FROM bids b
		JOIN users u ON u.user_id = b.bidder_id
		WHERE b.listing_id = $1
		ORDER BY b.offer DESC, b.created_at ASC, b.bid_id
		LIMIT 1
	`

	var bid models.BidDB
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &bid, query, listingID)
	if err != nil || !found {
		return nil, err
	}
	return &bid, nil
}

// CountByListing returns how many bids the listing received.
func (r *BidRepository) CountByListing(ctx context.Context, listingID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM bids WHERE listing_id = $1`

	var count int
	_, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &count, query, listingID)
	return count, err
}
