package postgres

import (
	"context"
	"testing"
	"time"
)

func TestMigrator_UpDownFlow(t *testing.T) {
	store := openRawPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Начинаем с чистой схемы: откатываем всё, что могло остаться.
	for {
		version, count, err := store.MigrationStatus(ctx)
		if err != nil {
			t.Fatalf("migration status: %v", err)
		}
		if count == 0 {
			break
		}
		if err := store.MigrateDown(ctx, count); err != nil {
			t.Fatalf("rollback migrations from version %d: %v", version, err)
		}
	}

	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	version, count, err := store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status: %v", err)
	}
	if count == 0 || version == 0 {
		t.Fatalf("expected applied migrations, got version=%d count=%d", version, count)
	}

	// Повторный up — no-op.
	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("repeat migrate up: %v", err)
	}
	version2, count2, err := store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status: %v", err)
	}
	if version2 != version || count2 != count {
		t.Fatalf("repeat up changed state: %d/%d vs %d/%d", version2, count2, version, count)
	}

	if err := store.MigrateDown(ctx, 1); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	version3, count3, err := store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status: %v", err)
	}
	if count3 != count-1 || version3 >= version {
		t.Fatalf("unexpected state after down: version=%d count=%d", version3, count3)
	}

	// Возвращаем схему для остальных тестов.
	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("restore schema: %v", err)
	}
}
