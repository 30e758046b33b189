package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// rangeCache implements driven.RangeCache.
type rangeCache struct {
	store *Store
	ttl   time.Duration
}

var _ driven.RangeCache = (*rangeCache)(nil)

// Get returns the cached range body for a hash prefix.
// Expired rows are reported as a miss.
func (c *rangeCache) Get(ctx context.Context, prefix string) (string, bool, error) {
	var (
		body      string
		fetchedAt int64
	)
	row := c.store.db.QueryRowContext(ctx, `
		SELECT body, fetched_at FROM breach_ranges WHERE prefix = ?
	`, prefix)
	if err := row.Scan(&body, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading breach range: %w", err)
	}

	if c.store.now().Sub(time.Unix(fetchedAt, 0)) > c.ttl {
		return "", false, nil
	}
	return body, true, nil
}

// Put stores or replaces the range body for a hash prefix.
func (c *rangeCache) Put(ctx context.Context, prefix, body string) error {
	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO breach_ranges (prefix, body, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(prefix) DO UPDATE SET
			body = excluded.body,
			fetched_at = excluded.fetched_at
	`, prefix, body, c.store.now().Unix())
	if err != nil {
		return fmt.Errorf("saving breach range: %w", err)
	}
	return nil
}
