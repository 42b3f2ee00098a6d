package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

// CommentRepository stores append-only listing comments.
type CommentRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentRepository(db *sqlx.DB, txGetter TxGetter) *CommentRepository {
	return &CommentRepository{db: db, txGetter: txGetter}
}

func (r *CommentRepository) Save(ctx context.Context, comment *models.CommentDB) error {
	const query = `
		INSERT INTO comments (comment_id, listing_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{comment.CommentID, comment.ListingID, comment.AuthorID, comment.Content, comment.CreatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, err == nil, err)

	return err
}

// ListByListing returns the listing's comments, oldest first.
func (r *CommentRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.CommentDB, error) {
	const query = `
		SELECT c.comment_id, c.listing_id, c.author_id, u.username AS author_name, c.content, c.created_at
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.listing_id = $1
		ORDER BY c.created_at, c.comment_id
	`

	comments := []models.CommentDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &comments, query, listingID)
	logQuery(query, []any{listingID}, len(comments), err)
	if err != nil {
		return nil, err
	}
	return comments, nil
}
