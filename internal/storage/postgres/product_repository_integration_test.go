package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/jcavendish/shop/internal/domain"
)

func makeTestProduct(id, name string, price int64, quantity int32, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       name,
		PriceMinor: price,
		Quantity:   quantity,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestProductRepository_CreateAndFindByName(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if err := repo.Create(makeTestProduct("prod-1", "keyboard", 500, 10, now)); err != nil {
		t.Fatalf("create product: %v", err)
	}

	got, err := repo.FindByName("keyboard")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if got.ID != "prod-1" || got.PriceMinor != 500 || got.Quantity != 10 {
		t.Fatalf("unexpected product: %+v", got)
	}

	if _, err := repo.FindByName("missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_DuplicateName(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if err := repo.Create(makeTestProduct("prod-1", "keyboard", 500, 10, now)); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if err := repo.Create(makeTestProduct("prod-2", "keyboard", 700, 3, now)); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate name, got %v", err)
	}
}

func TestProductRepository_FindAllByIDKeepsStoreOrder(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, name := range []string{"first", "second", "third"} {
		p := makeTestProduct("prod-"+name, name, 100, 5, base.Add(time.Duration(i)*time.Second))
		if err := repo.Create(p); err != nil {
			t.Fatalf("create product %s: %v", name, err)
		}
	}

	// Запрашиваем в обратном порядке плюс несуществующий ID: результат должен
	// идти в порядке хранилища и не содержать отсутствующий товар.
	products, err := repo.FindAllByID([]string{"prod-third", "missing", "prod-first"})
	if err != nil {
		t.Fatalf("find all by id: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != "prod-first" || products[1].ID != "prod-third" {
		t.Fatalf("unexpected order: %s, %s", products[0].ID, products[1].ID)
	}
}

func TestProductRepository_UpdateQuantities(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if err := repo.Create(makeTestProduct("prod-1", "keyboard", 500, 10, now)); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if err := repo.Create(makeTestProduct("prod-2", "mouse", 200, 5, now)); err != nil {
		t.Fatalf("create product: %v", err)
	}

	updated, err := repo.UpdateQuantities([]domain.QuantityUpdate{
		{ProductID: "prod-1", Quantity: 7},
		{ProductID: "missing", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("update quantities: %v", err)
	}
	if len(updated) != 1 || updated[0].ID != "prod-1" || updated[0].Quantity != 7 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	got, err := repo.FindByName("keyboard")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if got.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", got.Quantity)
	}

	untouched, err := repo.FindByName("mouse")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if untouched.Quantity != 5 {
		t.Fatalf("expected untouched quantity 5, got %d", untouched.Quantity)
	}
}
