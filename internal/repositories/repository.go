package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

// TxGetter returns the request-scoped transaction, or nil outside of one.
type TxGetter func(ctx context.Context) *sqlx.Tx

const pgUniqueViolation = "23505"

// executor picks the request transaction when there is one so that row locks
// and writes share it; otherwise it falls back to the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a statement on a single line with its arguments and outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// getOne runs a single-row query into dest. It reports found=false instead of
// sql.ErrNoRows.
func getOne(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, q, dest, query, args...)
	logQuery(query, args, err == nil, err)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// mapError converts driver errors the services care about into model errors.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", models.ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}
