//go:build integration

// Package testdb starts a throwaway PostgreSQL container with the schema applied.
package testdb

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/migrations"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/db"
)

// Handle owns the container and the pool connected to it
type Handle struct {
	DB     *db.PostgresDB
	cancel func()
	stop   func(context.Context) error
}

// Close releases the pool and terminates the container
func (h *Handle) Close() {
	if h.DB != nil {
		h.DB.Close()
	}
	if h.stop != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.stop(ctx)
	}
	if h.cancel != nil {
		h.cancel()
	}
}

// Start runs postgres in a container and applies the embedded migrations
func Start(ctx context.Context) (*Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	pg, err := postgres.RunContainer(ctx,
		tc.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("ams"),
		postgres.WithUsername("ams"),
		postgres.WithPassword("ams"),
	)
	if err != nil {
		cancel()
		return nil, err
	}

	fail := func(err error) (*Handle, error) {
		_ = pg.Terminate(context.Background())
		cancel()
		return nil, err
	}

	uri, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail(err)
	}

	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return fail(err)
	}
	if err := waitReady(ctx, pool); err != nil {
		pool.Close()
		return fail(err)
	}

	if err := migrations.NewMigrator(pool, zerolog.Nop()).Up(ctx); err != nil {
		pool.Close()
		return fail(err)
	}

	return &Handle{
		DB:     db.NewFromPool(pool),
		cancel: cancel,
		stop:   pg.Terminate,
	}, nil
}

// Truncate empties every table between tests
func (h *Handle) Truncate(ctx context.Context) error {
	_, err := h.DB.Pool.Exec(ctx, `TRUNCATE achievements, student, teacher RESTART IDENTITY CASCADE`)
	return err
}

func waitReady(ctx context.Context, pool *pgxpool.Pool) error {
	dead := time.Now().Add(20 * time.Second)
	for time.Now().Before(dead) {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return errors.New("db not ready")
}
