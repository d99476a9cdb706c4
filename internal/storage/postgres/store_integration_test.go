package postgres

import (
	"context"
	"testing"
	"time"
)

func TestStore_Ping(t *testing.T) {
	store := openRawPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestStore_PingNil(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Ping(context.Background()); err == nil {
		t.Fatal("expected error for nil store")
	}
}
