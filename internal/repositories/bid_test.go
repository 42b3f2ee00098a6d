package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

func TestBidRepository(t *testing.T) {
	conn := setupPostgres(t)
	ctx := context.Background()
	repo := NewBidRepository(conn, nil)

	seller := createUser(t, conn, "seller")
	alice := createUser(t, conn, "alice")
	bob := createUser(t, conn, "bob")
	listing := createListing(t, conn, seller, "Lamp", "Home", 10)

	t.Run("NoBids", func(t *testing.T) {
		highest, err := repo.GetHighestByListing(ctx, listing.ListingID)
		assert.NoError(t, err)
		assert.Nil(t, highest)

		count, err := repo.CountByListing(ctx, listing.ListingID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	base := time.Now().Add(-time.Minute)
	bids := []models.BidDB{
		{BidID: uuid.New(), ListingID: listing.ListingID, BidderID: alice.UserID, Offer: 10, CreatedAt: base},
		{BidID: uuid.New(), ListingID: listing.ListingID, BidderID: alice.UserID, Offer: 15, CreatedAt: base.Add(time.Second)},
		{BidID: uuid.New(), ListingID: listing.ListingID, BidderID: bob.UserID, Offer: 15, CreatedAt: base.Add(2 * time.Second)},
	}
	for i := range bids {
		require.NoError(t, repo.Save(ctx, &bids[i]))
	}

	t.Run("HighestEarliestWinsTie", func(t *testing.T) {
		highest, err := repo.GetHighestByListing(ctx, listing.ListingID)
		require.NoError(t, err)
		require.NotNil(t, highest)
		assert.Equal(t, bids[1].BidID, highest.BidID)
		assert.Equal(t, int64(15), highest.Offer)
		assert.Equal(t, "alice", highest.BidderName)
	})

	t.Run("Count", func(t *testing.T) {
		count, err := repo.CountByListing(ctx, listing.ListingID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("HigherOfferWins", func(t *testing.T) {
		top := models.BidDB{BidID: uuid.New(), ListingID: listing.ListingID, BidderID: bob.UserID, Offer: 16, CreatedAt: base.Add(3 * time.Second)}
		require.NoError(t, repo.Save(ctx, &top))

		highest, err := repo.GetHighestByListing(ctx, listing.ListingID)
		require.NoError(t, err)
		require.NotNil(t, highest)
		assert.Equal(t, top.BidID, highest.BidID)
		assert.Equal(t, "bob", highest.BidderName)
	})
}

func TestBidRepository_CloseAtHighestOffer(t *testing.T) {
	conn := setupPostgres(t)
	ctx := context.Background()
	bidRepo := NewBidRepository(conn, nil)
	listingRepo := NewListingWriteRepository(conn, nil)

	seller := createUser(t, conn, "seller")
	bidder := createUser(t, conn, "bidder")
	listing := createListing(t, conn, seller, "Lamp", "Home", 5)

	now := time.Now()
	for i, offer := range []int64{10, 25, 15} {
		bid := models.BidDB{
			BidID:     uuid.New(),
			ListingID: listing.ListingID,
			BidderID:  bidder.UserID,
			Offer:     offer,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, bidRepo.Save(ctx, &bid))
	}

	highest, err := bidRepo.GetHighestByListing(ctx, listing.ListingID)
	require.NoError(t, err)
	require.NotNil(t, highest)

	closed, err := listingRepo.Close(ctx, listing.ListingID, highest.Offer)
	require.NoError(t, err)
	require.True(t, closed)

	stored, err := NewListingReadRepository(conn, nil).GetByTitle(ctx, "Lamp")
	require.NoError(t, err)
	assert.False(t, stored.Active)
	assert.Equal(t, int64(25), *stored.PriceSoldFor)
}
