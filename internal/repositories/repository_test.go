package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var listingColumns = []string{
	"listing_id", "seller_id", "seller_name", "title", "description",
	"starting_bid", "category", "active", "price_sold_for", "created_at", "updated_at",
}

func TestMapError(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: "23505", ConstraintName: "listings_title_key"})
	assert.ErrorIs(t, err, models.ErrUniqueViolation)
	assert.Contains(t, err.Error(), "listings_title_key")

	other := errors.New("boom")
	assert.Same(t, other, mapError(other))

	fk := &pgconn.PgError{Code: "23503"}
	assert.NotErrorIs(t, mapError(fk), models.ErrUniqueViolation)

	assert.NoError(t, mapError(nil))
}

func TestExecutor(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	assert.Equal(t, sqlx.ExtContext(db), executor(ctx, db, nil))
	assert.Equal(t, sqlx.ExtContext(db), executor(ctx, db, func(context.Context) *sqlx.Tx { return nil }))

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	assert.Equal(t, sqlx.ExtContext(tx), executor(ctx, db, fixedTx(tx)))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
}

func TestListingReadRepository_GetByTitle_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingReadRepository(db, nil)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		id, sellerID := uuid.New(), uuid.New()
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("WHERE l.title = $1")).
			WithArgs("Lamp").
			WillReturnRows(sqlmock.NewRows(listingColumns).
				AddRow(id.String(), sellerID.String(), "alice", "Lamp", "desc", int64(10), "Home", true, nil, now, now))

		listing, err := repo.GetByTitle(ctx, "Lamp")
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Equal(t, id, listing.ListingID)
		assert.Equal(t, "alice", listing.SellerName)
		assert.Nil(t, listing.PriceSoldFor)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE l.title = $1")).
			WithArgs("Missing").
			WillReturnRows(sqlmock.NewRows(listingColumns))

		listing, err := repo.GetByTitle(ctx, "Missing")
		assert.NoError(t, err)
		assert.Nil(t, listing)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE l.title = $1")).
			WithArgs("Lamp").
			WillReturnError(errors.New("connection reset"))

		listing, err := repo.GetByTitle(ctx, "Lamp")
		assert.Error(t, err)
		assert.Nil(t, listing)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingReadRepository_GetByTitleForUpdate_UsesTx(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE OF l")).
		WithArgs("Lamp").
		WillReturnRows(sqlmock.NewRows(listingColumns))
	mock.ExpectRollback()

	listing, err := NewListingReadRepository(db, fixedTx(tx)).GetByTitleForUpdate(ctx, "Lamp")
	assert.NoError(t, err)
	assert.Nil(t, listing)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingWriteRepository_Save_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO listings")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "listings_title_key"})

	listing := models.ListingDB{ListingID: uuid.New(), SellerID: uuid.New(), Title: "Lamp"}
	err := NewListingWriteRepository(db, nil).Save(context.Background(), &listing)
	assert.ErrorIs(t, err, models.ErrUniqueViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingWriteRepository_Close_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingWriteRepository(db, nil)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("WHERE listing_id = $1 AND active")).
		WithArgs(id, int64(25)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("WHERE listing_id = $1 AND active")).
		WithArgs(id, int64(30)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("WHERE listing_id = $1 AND active")).
		WithArgs(id, int64(30)).
		WillReturnError(errors.New("deadlock detected"))

	closed, err := repo.Close(ctx, id, 25)
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = repo.Close(ctx, id, 30)
	require.NoError(t, err)
	assert.False(t, closed)

	closed, err = repo.Close(ctx, id, 30)
	assert.Error(t, err)
	assert.False(t, closed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWatchlistRepository_Add_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWatchlistRepository(db, nil)
	userID, listingID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, listing_id) DO NOTHING")).
		WithArgs(userID, listingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, listing_id) DO NOTHING")).
		WithArgs(userID, listingID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	added, err := repo.Add(context.Background(), userID, listingID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(context.Background(), userID, listingID)
	require.NoError(t, err)
	assert.False(t, added)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBidRepository_CountByListing_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bids")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := NewBidRepository(db, nil).CountByListing(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername_Mock(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "email", "password_hash", "created_at", "updated_at"}))

	user, err := NewUserReadRepository(db).GetByUsername(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
