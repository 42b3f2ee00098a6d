package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

func TestListingWriteRepository_Save(t *testing.T) {
	conn := setupPostgres(t)
	ctx := context.Background()
	seller := createUser(t, conn, "seller")

	listing := createListing(t, conn, seller, "Lamp", "Home", 10)
	assert.True(t, listing.Active)
	assert.False(t, listing.CreatedAt.IsZero())

	stored, err := NewListingReadRepository(conn, nil).GetByTitle(ctx, "Lamp")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, listing.ListingID, stored.ListingID)
	assert.Equal(t, "seller", stored.SellerName)
	assert.Equal(t, int64(10), stored.StartingBid)
	assert.Equal(t, "Home", stored.Category)
	assert.True(t, stored.Active)
	assert.Nil(t, stored.PriceSoldFor)
}

func TestListingWriteRepository_Save_DuplicateTitle(t *testing.T) {
	conn := setupPostgres(t)
	seller := createUser(t, conn, "seller")
	createListing(t, conn, seller, "Lamp", "Home", 10)

	dup := models.ListingDB{ListingID: uuid.New(), SellerID: seller.UserID, Title: "Lamp", Description: "again", Category: "Home"}
	err := NewListingWriteRepository(conn, nil).Save(context.Background(), &dup)
	assert.ErrorIs(t, err, models.ErrUniqueViolation)
}

func TestListingReadRepository_GetByTitle_NotFound(t *testing.T) {
	conn := setupPostgres(t)

	listing, err := NewListingReadRepository(conn, nil).GetByTitle(context.Background(), "Nope")
	assert.NoError(t, err)
	assert.Nil(t, listing)
}

func TestListingReadRepository_Lists(t *testing.T) {
	conn := setupPostgres(t)
	ctx := context.Background()
	repo := NewListingReadRepository(conn, nil)

	alice := createUser(t, conn, "alice")
	bob := createUser(t, conn, "bob")
	createListing(t, conn, alice, "Lamp", "Home", 10)
	createListing(t, conn, alice, "Chair", "Home", 20)
	createListing(t, conn, bob, "Guitar", "Music", 100)

	t.Run("All", func(t *testing.T) {
		listings, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, listings, 3)
	})

	t.Run("ByCategory", func(t *testing.T) {
		listings, err := repo.ListByCategory(ctx, "Home")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Lamp", "Chair"}, titles(listings))

		listings, err = repo.ListByCategory(ctx, "home")
		require.NoError(t, err)
		assert.Empty(t, listings, "category match is exact")
	})

	t.Run("BySeller", func(t *testing.T) {
		listings, err := repo.ListBySeller(ctx, bob.UserID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Guitar"}, titles(listings))
	})

	t.Run("Categories", func(t *testing.T) {
		categories, err := repo.ListCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Home", "Music"}, categories)
	})
}

func TestListingReadRepository_Empty(t *testing.T) {
	conn := setupPostgres(t)
	repo := NewListingReadRepository(conn, nil)

	listings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestListingWriteRepository_Close(t *testing.T) {
	conn := setupPostgres(t)
	ctx := context.Background()
	seller := createUser(t, conn, "seller")
	listing := createListing(t, conn, seller, "Lamp", "Home", 10)

	writeRepo := NewListingWriteRepository(conn, nil)
	readRepo := NewListingReadRepository(conn, nil)

	closed, err := writeRepo.Close(ctx, listing.ListingID, 25)
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = writeRepo.Close(ctx, listing.ListingID, 99)
	require.NoError(t, err)
	assert.False(t, closed, "second close is a no-op")

	stored, err := readRepo.GetByTitle(ctx, "Lamp")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Active)
	require.NotNil(t, stored.PriceSoldFor)
	assert.Equal(t, int64(25), *stored.PriceSoldFor)
}

func TestListingReadRepository_GetByTitleForUpdate_LocksRow(t *testing.T) {
	conn := setupPostgres(t)
	ctx := context.Background()
	seller := createUser(t, conn, "seller")
	createListing(t, conn, seller, "Lamp", "Home", 10)

	tx1, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx1.Rollback()

	locker := NewListingReadRepository(conn, fixedTx(tx1))
	listing, err := locker.GetByTitleForUpdate(ctx, "Lamp")
	require.NoError(t, err)
	require.NotNil(t, listing)

	tx2, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx2.Rollback()
	_, err = tx2.Exec(`SET LOCAL lock_timeout = '200ms'`)
	require.NoError(t, err)

	start := time.Now()
	_, err = NewListingReadRepository(conn, fixedTx(tx2)).GetByTitleForUpdate(ctx, "Lamp")
	assert.Error(t, err, "row is locked by the first transaction")
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func fixedTx(tx *sqlx.Tx) TxGetter {
	return func(context.Context) *sqlx.Tx { return tx }
}

func titles(listings []models.ListingDB) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Title)
	}
	return out
}
