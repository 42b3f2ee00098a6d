package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

//go:generate mockgen -source=comment.go -destination=comment_mock.go -package=services

var ErrEmptyComment = errors.New("comment must not be empty")

// CommentWriter appends comments.
type CommentWriter interface {
	Save(ctx context.Context, comment *models.CommentDB) error
}

// CommentService appends comments to listings.
type CommentService struct {
	listings ListingGetter
	comments CommentWriter
}

// NewCommentService creates a new CommentService.
func NewCommentService(listings ListingGetter, comments CommentWriter) *CommentService {
	return &CommentService{listings: listings, comments: comments}
}

// AddComment stores a comment by the author on the listing.
func (s *CommentService) AddComment(ctx context.Context, title string, authorID uuid.UUID, content string) (*models.CommentDB, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	listing, err := s.listings.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	comment := &models.CommentDB{
		CommentID: uuid.New(),
		ListingID: listing.ListingID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Save(ctx, comment); err != nil {
		logger.Log.Errorw("failed to save comment", "listing_id", listing.ListingID, "error", err)
		return nil, err
	}

	return comment, nil
}
