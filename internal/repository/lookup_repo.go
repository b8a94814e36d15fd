package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/nc-news-api/internal/database"
)

// lookupRepo is the concrete implementation of LookupRepository
type lookupRepo struct {
	db *database.DB
}

// NewLookupRepo creates a new lookup repository
func NewLookupRepo(db *database.DB) LookupRepository {
	return &lookupRepo{db: db}
}

// ValidColumns returns the live column names of a table from the schema
// catalog. No caching: the allow-list always reflects the current schema.
func (r *lookupRepo) ValidColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT column_name FROM information_schema.columns WHERE table_name = $1",
		table,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

// Exists reports whether a row with column = value exists in table. Table
// and column names come from code, never from callers, and are quoted as
// identifiers anyway; the value stays a bound parameter.
func (r *lookupRepo) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)",
		pq.QuoteIdentifier(table), pq.QuoteIdentifier(column),
	)

	var exists bool
	err := r.db.QueryRowContext(ctx, query, value).Scan(&exists)
	return exists, err
}
