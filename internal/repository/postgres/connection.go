package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtroode/socialfeed-server/database"
)

// ConnectionOptions tunes the pool and the startup probe.
type ConnectionOptions struct {
	MaxConns        int32
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

type Connection struct {
	*pgxpool.Pool
}

// NewConnection waits for the database, applies migrations and opens a pool.
func NewConnection(ctx context.Context, dsn string, opts ConnectionOptions) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		conf.MaxConns = opts.MaxConns
	}
	conf.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement

	if err := database.WaitForDSN(ctx, dsn, opts.ConnectAttempts, opts.ConnectBackoff); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if err := database.Migrate(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	return &Connection{
		Pool: pool,
	}, nil
}

func (s *Connection) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return s.Pool.Ping(ctx)
}
