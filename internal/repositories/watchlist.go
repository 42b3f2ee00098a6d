package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

// WatchlistRepository stores (user, listing) pairs; the pair is the primary key.
type WatchlistRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWatchlistRepository(db *sqlx.DB, txGetter TxGetter) *WatchlistRepository {
	return &WatchlistRepository{db: db, txGetter: txGetter}
}

// Add inserts the pair and reports whether it was new.
func (r *WatchlistRepository) Add(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO watchlists (user_id, listing_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, listing_id) DO NOTHING
	`
	args := []any{userID, listingID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// ListListingsByUser returns the listings on the user's watchlist, most recently added first.
func (r *WatchlistRepository) ListListingsByUser(ctx context.Context, userID uuid.UUID) ([]models.ListingDB, error) {
	const query = listingSelect + `
		JOIN watchlists w ON w.listing_id = l.listing_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC, l.title
	`

	listings := []models.ListingDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &listings, query, userID)
	logQuery(query, []any{userID}, len(listings), err)
	if err != nil {
		return nil, err
	}
	return listings, nil
}
