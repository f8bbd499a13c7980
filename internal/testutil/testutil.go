// Package testutil provides shared helpers for integration tests that need
// live Redis or PostgreSQL backends. Tests skip when a backend is absent
// unless TEST_REQUIRE_BACKENDS is set.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func requireBackends() bool {
	return os.Getenv("TEST_REQUIRE_BACKENDS") != ""
}

// SetupTestRedis connects to the Redis instance named by TEST_REDIS_ADDR and
// flushes it. Tests skip when the variable is unset or the ping fails.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		if requireBackends() {
			t.Fatal("TEST_REDIS_ADDR not set")
		}
		t.Skip("TEST_REDIS_ADDR not set; skipping Redis-backed test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if requireBackends() {
			t.Fatalf("Redis not reachable at %s: %v", addr, err)
		}
		t.Skipf("Redis not reachable at %s: %v", addr, err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// SetupTestDB connects to the database named by TEST_DATABASE_URL. Tests
// skip when the variable is unset or the ping fails. Callers are expected to
// run against a disposable schema.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		if requireBackends() {
			t.Fatal("TEST_DATABASE_URL not set")
		}
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		if requireBackends() {
			t.Fatalf("database not reachable: %v", err)
		}
		t.Skipf("database not reachable: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}
