package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestInitStorage_Memory(t *testing.T) {
	logger := log.WithField("test", "storage")

	deps, err := initStorage(context.Background(), Config{StorageDriver: StorageDriverMemory}, logger)
	if err != nil {
		t.Fatalf("init memory storage: %v", err)
	}
	defer deps.Close()

	if deps.Customers == nil || deps.Products == nil || deps.Orders == nil {
		t.Error("expected all repositories to be initialized")
	}
	if deps.Store != nil {
		t.Error("expected nil postgres store for memory driver")
	}
}

func TestInitStorage_EmptyDriverDefaultsToMemory(t *testing.T) {
	logger := log.WithField("test", "storage")

	deps, err := initStorage(context.Background(), Config{}, logger)
	if err != nil {
		t.Fatalf("init storage with empty driver: %v", err)
	}
	defer deps.Close()

	if deps.Customers == nil {
		t.Error("expected repositories to be initialized")
	}
}

func TestInitStorage_PostgresRequiresDSN(t *testing.T) {
	logger := log.WithField("test", "storage")

	_, err := initStorage(context.Background(), Config{StorageDriver: StorageDriverPostgres}, logger)
	if err == nil {
		t.Error("expected error for postgres driver without DSN")
	}
}

func TestInitStorage_UnknownDriver(t *testing.T) {
	logger := log.WithField("test", "storage")

	_, err := initStorage(context.Background(), Config{StorageDriver: "cassandra"}, logger)
	if err == nil {
		t.Error("expected error for unknown storage driver")
	}
}

func TestDependencies_CloseNil(_ *testing.T) {
	// Не должно паниковать.
	var deps *Dependencies
	deps.Close()
}
