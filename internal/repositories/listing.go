package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

const listingSelect = `
	SELECT l.listing_id, l.seller_id, u.username AS seller_name, l.title, l.description,
	       l.starting_bid, l.category, l.active, l.price_sold_for, l.created_at, l.updated_at
	FROM listings l
	JOIN users u ON u.user_id = l.seller_id
`

// ListingReadRepository reads listings and their categories.
type ListingReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewListingReadRepository(db *sqlx.DB, txGetter TxGetter) *ListingReadRepository {
	return &ListingReadRepository{db: db, txGetter: txGetter}
}

// GetByTitle returns nil, nil when no listing has that title.
func (r *ListingReadRepository) GetByTitle(ctx context.Context, title string) (*models.ListingDB, error) {
	const query = listingSelect + `WHERE l.title = $1`

	var listing models.ListingDB
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &listing, query, title)
	if err != nil || !found {
		return nil, err
	}
	return &listing, nil
}

// GetByTitleForUpdate is GetByTitle that also locks the listing row until the
// surrounding transaction ends. Outside a transaction the lock is released
// immediately.
func (r *ListingReadRepository) GetByTitleForUpdate(ctx context.Context, title string) (*models.ListingDB, error) {
	const query = listingSelect + `WHERE l.title = $1 FOR UPDATE OF l`

	var listing models.ListingDB
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &listing, query, title)
	if err != nil || !found {
		return nil, err
	}
	return &listing, nil
}

// List returns every listing, newest first.
func (r *ListingReadRepository) List(ctx context.Context) ([]models.ListingDB, error) {
	const query = listingSelect + `ORDER BY l.created_at DESC, l.title`
	return r.selectListings(ctx, query)
}

// ListByCategory returns listings whose category matches exactly, newest first.
func (r *ListingReadRepository) ListByCategory(ctx context.Context, category string) ([]models.ListingDB, error) {
	const query = listingSelect + `WHERE l.category = $1 ORDER BY l.created_at DESC, l.title`
	return r.selectListings(ctx, query, category)
}

// ListBySeller returns all listings owned by the seller, newest first.
func (r *ListingReadRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ListingDB, error) {
	const query = listingSelect + `WHERE l.seller_id = $1 ORDER BY l.created_at DESC, l.title`
	return r.selectListings(ctx, query, sellerID)
}

// ListCategories returns the distinct categories currently in use, sorted.
func (r *ListingReadRepository) ListCategories(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT category FROM listings ORDER BY category`

	categories := []string{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &categories, query)
	logQuery(query, nil, len(categories), err)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ListingReadRepository) selectListings(ctx context.Context, query string, args ...any) ([]models.ListingDB, error) {
	listings := []models.ListingDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &listings, query, args...)
	logQuery(query, args, len(listings), err)
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// ListingWriteRepository writes listings.
type ListingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewListingWriteRepository(db *sqlx.DB, txGetter TxGetter) *ListingWriteRepository {
	return &ListingWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new active listing. A taken title yields models.ErrUniqueViolation.
func (r *ListingWriteRepository) Save(ctx context.Context, listing *models.ListingDB) error {
	const query = `
		INSERT INTO listings (listing_id, seller_id, title, description, starting_bid, category, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
		RETURNING active, created_at, updated_at
	`
	args := []any{listing.ListingID, listing.SellerID, listing.Title, listing.Description, listing.StartingBid, listing.Category}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&listing.Active, &listing.CreatedAt, &listing.UpdatedAt)
	logQuery(query, args, err == nil, err)

	return mapError(err)
}

// Close marks an active listing inactive and records its final price.
// It reports false when the listing was already closed, leaving it untouched.
func (r *ListingWriteRepository) Close(ctx context.Context, listingID uuid.UUID, priceSoldFor int64) (bool, error) {
	const query = `
		UPDATE listings
		SET active = FALSE, price_sold_for = $2, updated_at = NOW()
		WHERE listing_id = $1 AND active
	`
	args := []any{listingID, priceSoldFor}

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
