package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=services

var (
	ErrListingNotFound   = errors.New("listing not found")
	ErrListingTitleTaken = errors.New("a listing with this title already exists")
	ErrInvalidListing    = errors.New("invalid listing")
	ErrUserNotFound      = errors.New("user not found")
)

// ListingGetter looks a listing up by its title.
type ListingGetter interface {
	GetByTitle(ctx context.Context, title string) (*models.ListingDB, error)
}

// ListingReader defines read-only operations for listings.
type ListingReader interface {
	GetByTitle(ctx context.Context, title string) (*models.ListingDB, error)
	List(ctx context.Context) ([]models.ListingDB, error)
	ListByCategory(ctx context.Context, category string) ([]models.ListingDB, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ListingDB, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// ListingWriter defines write operations for listings.
type ListingWriter interface {
	Save(ctx context.Context, listing *models.ListingDB) error
}

// BidReader reads bid aggregates of a listing.
type BidReader interface {
	GetHighestByListing(ctx context.Context, listingID uuid.UUID) (*models.BidDB, error)
	CountByListing(ctx context.Context, listingID uuid.UUID) (int, error)
}

// CommentReader lists comments of a listing.
type CommentReader interface {
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.CommentDB, error)
}

// WatchlistReader lists the listings a user watches.
type WatchlistReader interface {
	ListListingsByUser(ctx context.Context, userID uuid.UUID) ([]models.ListingDB, error)
}

// UserGetter looks a user up by ID.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ListingService creates listings and assembles the read-only pages.
type ListingService struct {
	listings  ListingReader
	writer    ListingWriter
	bids      BidReader
	comments  CommentReader
	watchlist WatchlistReader
	users     UserGetter
	events    EventPublisher
}

// NewListingService creates a new ListingService.
func NewListingService(
	listings ListingReader,
	writer ListingWriter,
	bids BidReader,
	comments CommentReader,
	watchlist WatchlistReader,
	users UserGetter,
	events EventPublisher,
) *ListingService {
	return &ListingService{
		listings:  listings,
		writer:    writer,
		bids:      bids,
		comments:  comments,
		watchlist: watchlist,
		users:     users,
		events:    events,
	}
}

// validateListing trims the text fields in place and checks them.
func validateListing(in *models.NewListing) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)

	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidListing)
	case utf8.RuneCountInString(in.Title) > models.MaxTitleLength:
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidListing, models.MaxTitleLength)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalidListing)
	case in.Category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidListing)
	case utf8.RuneCountInString(in.Category) > models.MaxTitleLength:
		return fmt.Errorf("%w: category must be at most %d characters", ErrInvalidListing, models.MaxTitleLength)
	case in.StartingBid < 0:
		return fmt.Errorf("%w: starting bid must not be negative", ErrInvalidListing)
	}
	return nil
}

// CreateListing stores a new active listing owned by the seller.
func (s *ListingService) CreateListing(ctx context.Context, sellerID uuid.UUID, in models.NewListing) (*models.ListingDB, error) {
	if err := validateListing(&in); err != nil {
		return nil, err
	}

	listing := &models.ListingDB{
		ListingID:   uuid.New(),
		SellerID:    sellerID,
		Title:       in.Title,
		Description: in.Description,
		StartingBid: in.StartingBid,
		Category:    in.Category,
	}
	if err := s.writer.Save(ctx, listing); err != nil {
		if errors.Is(err, models.ErrUniqueViolation) {
			return nil, ErrListingTitleTaken
		}
		logger.Log.Errorw("failed to save listing", "title", in.Title, "error", err)
		return nil, err
	}

	logger.Log.Infow("listing created", "listing_id", listing.ListingID, "title", listing.Title, "seller_id", sellerID)
	s.events.Publish(ctx, models.AuctionEvent{
		Type:      models.EventListingCreated,
		ListingID: listing.ListingID.String(),
		Title:     listing.Title,
		UserID:    sellerID.String(),
		Amount:    listing.StartingBid,
	})

	return listing, nil
}

// ListListings returns every listing.
func (s *ListingService) ListListings(ctx context.Context) ([]models.ListingDB, error) {
	return s.listings.List(ctx)
}

// ListByCategory returns the listings of one category.
func (s *ListingService) ListByCategory(ctx context.Context, category string) ([]models.ListingDB, error) {
	return s.listings.ListByCategory(ctx, category)
}

// ListCategories returns the categories in use right now.
func (s *ListingService) ListCategories(ctx context.Context) ([]string, error) {
	return s.listings.ListCategories(ctx)
}

// GetListingPage loads a listing with its comments and bid summary.
func (s *ListingService) GetListingPage(ctx context.Context, title string) (*models.ListingPage, error) {
	listing, err := s.listings.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	comments, err := s.comments.ListByListing(ctx, listing.ListingID)
	if err != nil {
		return nil, err
	}
	highest, err := s.bids.GetHighestByListing(ctx, listing.ListingID)
	if err != nil {
		return nil, err
	}
	count, err := s.bids.CountByListing(ctx, listing.ListingID)
	if err != nil {
		return nil, err
	}

	return &models.ListingPage{
		Listing:    *listing,
		Comments:   comments,
		HighestBid: highest,
		BidCount:   count,
	}, nil
}

// GetUserHome splits the user's listings into active and ended and adds the
// user's watchlist.
func (s *ListingService) GetUserHome(ctx context.Context, userID uuid.UUID) (*models.UserHome, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	owned, err := s.listings.ListBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	watched, err := s.watchlist.ListListingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	home := &models.UserHome{
		User:      *user,
		Active:    []models.ListingDB{},
		Ended:     []models.ListingDB{},
		Watchlist: watched,
	}
	for _, l := range owned {
		if l.Active {
			home.Active = append(home.Active, l)
		} else {
			home.Ended = append(home.Ended, l)
		}
	}
	return home, nil
}
