package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	dbPingTimeout = 5 * time.Second
	dbMaxBackoff  = 5 * time.Second
)

// openDatabase opens a pgx-backed connection and pings with exponential
// backoff until the instance answers or waitFor elapses.
func openDatabase(ctx context.Context, dsn string, waitFor time.Duration) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, waitFor)
	defer cancel()

	backoff := 500 * time.Millisecond
	for {
		pingCtx, cancelPing := context.WithTimeout(ctx, dbPingTimeout)
		err = db.PingContext(pingCtx)
		cancelPing()
		if err == nil {
			return db, nil
		}

		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		case <-time.After(backoff):
			backoff = min(backoff*2, dbMaxBackoff)
		}
	}
}
