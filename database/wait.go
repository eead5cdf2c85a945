package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// WaitForDB pings db until it answers, up to attempts times, sleeping backoff
// between tries (doubling each time). It gives up early when ctx is done.
func WaitForDB(ctx context.Context, db *sql.DB, attempts int, backoff time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if lastErr = db.PingContext(ctx); lastErr == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("database not ready: %w", ctx.Err())
		case <-timer.C:
		}
		backoff *= 2
	}

	return fmt.Errorf("database not ready after %d attempts: %w", attempts, lastErr)
}

// WaitForDSN opens dsn with the pgx driver and waits for it to answer.
func WaitForDSN(ctx context.Context, dsn string, attempts int, backoff time.Duration) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return WaitForDB(ctx, db, attempts, backoff)
}
