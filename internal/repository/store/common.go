package store

import (
	"context"
	"database/sql"

	"task-export/internal/errors"
)

// Querier is the subset of *sql.DB and *sql.Tx used by the helpers below
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// HandleDatabaseError converts database errors to structured app errors.
// Context deadline failures surface as timeout errors.
func HandleDatabaseError(ctx context.Context, operation string, err error) error {
	if ctxErr := ctx.Err(); ctxErr == context.DeadlineExceeded {
		deadline, _ := ctx.Deadline()
		return errors.NewTimeoutError(operation, deadline)
	}
	return errors.NewDatabaseError(operation, err)
}

// ExecuteWithLastInsertID executes an INSERT and returns the new row id.
// Postgres has no LastInsertId, so the statement gets a RETURNING clause instead.
func ExecuteWithLastInsertID(ctx context.Context, q Querier, dialect Dialect, query string, args ...interface{}) (int64, error) {
	if !dialect.SupportsLastInsertID() {
		var id int64
		if err := q.QueryRowContext(ctx, dialect.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, HandleDatabaseError(ctx, "execute query", err)
		}
		return id, nil
	}

	result, err := q.ExecContext(ctx, dialect.Rebind(query), args...)
	if err != nil {
		return 0, HandleDatabaseError(ctx, "execute query", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleDatabaseError(ctx, "get last insert ID", err)
	}

	return id, nil
}

// QuerySingle executes a query that returns a single row and scans it
func QuerySingle[T any](ctx context.Context, q Querier, dialect Dialect, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	row := q.QueryRowContext(ctx, dialect.Rebind(query), args...)
	result, err := scanFunc(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError(entityType, id)
		}
		return nil, HandleDatabaseError(ctx, "scan "+entityType, err)
	}
	return result, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, q Querier, dialect Dialect, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := q.QueryContext(ctx, dialect.Rebind(query), args...)
	if err != nil {
		return nil, HandleDatabaseError(ctx, "query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError(ctx, "scan "+entityType, err)
	}

	return results, nil
}
