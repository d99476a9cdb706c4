package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/jcavendish/shop/internal/domain"
)

func makeTestCustomer(id, email string) domain.Customer {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Customer{
		ID:        id,
		Name:      "Test Customer",
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCustomerRepository_CreateAndGet(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCustomerRepository(store)

	customer := makeTestCustomer("cust-1", "cust-1@example.com")
	if err := repo.Create(customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	got, err := repo.Get("cust-1")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if got.ID != customer.ID || got.Name != customer.Name || got.Email != customer.Email {
		t.Fatalf("unexpected customer: %+v", got)
	}
}

func TestCustomerRepository_GetByEmail(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCustomerRepository(store)

	customer := makeTestCustomer("cust-2", "cust-2@example.com")
	if err := repo.Create(customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	got, err := repo.GetByEmail("cust-2@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != "cust-2" {
		t.Fatalf("unexpected customer: %+v", got)
	}

	if _, err := repo.GetByEmail("missing@example.com"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerRepository_DuplicateID(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCustomerRepository(store)

	customer := makeTestCustomer("cust-3", "cust-3@example.com")
	if err := repo.Create(customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	dup := makeTestCustomer("cust-3", "other@example.com")
	if err := repo.Create(dup); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCustomerRepository_DuplicateEmail(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCustomerRepository(store)

	if err := repo.Create(makeTestCustomer("cust-4", "shared@example.com")); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if err := repo.Create(makeTestCustomer("cust-5", "shared@example.com")); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate email, got %v", err)
	}
}

func TestCustomerRepository_GetMissing(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCustomerRepository(store)

	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
