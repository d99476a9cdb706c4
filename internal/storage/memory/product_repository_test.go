package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jcavendish/shop/internal/domain"
	"github.com/jcavendish/shop/internal/storage/memory"
)

func newProduct(id, name string, quantity int32) domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ID:         id,
		Name:       name,
		PriceMinor: 500,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestProductRepository_CreateFindByName(t *testing.T) {
	repo := memory.NewProductRepository()
	product := newProduct("product-1", "keyboard", 10)

	if err := repo.Create(product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.FindByName("keyboard")
	if err != nil {
		t.Fatalf("find by name failed: %v", err)
	}
	if stored.ID != product.ID {
		t.Fatalf("expected id %s, got %s", product.ID, stored.ID)
	}
}

func TestProductRepository_FindByNameMissing(t *testing.T) {
	repo := memory.NewProductRepository()

	if _, err := repo.FindByName("missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_CreateAllowsDuplicateNames(t *testing.T) {
	repo := memory.NewProductRepository()

	if err := repo.Create(newProduct("product-1", "keyboard", 10)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(newProduct("product-2", "keyboard", 3)); err != nil {
		t.Fatalf("create with duplicate name failed: %v", err)
	}
}

func TestProductRepository_FindAllByID(t *testing.T) {
	repo := memory.NewProductRepository()
	for _, p := range []domain.Product{
		newProduct("product-1", "keyboard", 10),
		newProduct("product-2", "mouse", 5),
		newProduct("product-3", "monitor", 2),
	} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	products, err := repo.FindAllByID([]string{"product-3", "product-1", "missing"})
	if err != nil {
		t.Fatalf("find all by id failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	// Порядок хранилища, а не порядок запроса.
	if products[0].ID != "product-1" || products[1].ID != "product-3" {
		t.Fatalf("unexpected order: %s, %s", products[0].ID, products[1].ID)
	}
}

func TestProductRepository_UpdateQuantities(t *testing.T) {
	repo := memory.NewProductRepository()
	if err := repo.Create(newProduct("product-1", "keyboard", 10)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(newProduct("product-2", "mouse", 5)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateQuantities([]domain.QuantityUpdate{
		{ProductID: "product-1", Quantity: 7},
	})
	if err != nil {
		t.Fatalf("update quantities failed: %v", err)
	}
	if len(updated) != 1 || updated[0].Quantity != 7 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	products, err := repo.FindAllByID([]string{"product-1", "product-2"})
	if err != nil {
		t.Fatalf("find all by id failed: %v", err)
	}
	if products[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", products[0].Quantity)
	}
	// Остальные товары не затронуты.
	if products[1].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", products[1].Quantity)
	}
}

func TestProductRepository_UpdateQuantitiesSkipsUnknown(t *testing.T) {
	repo := memory.NewProductRepository()
	if err := repo.Create(newProduct("product-1", "keyboard", 10)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateQuantities([]domain.QuantityUpdate{
		{ProductID: "missing", Quantity: 1},
		{ProductID: "product-1", Quantity: 9},
	})
	if err != nil {
		t.Fatalf("update quantities failed: %v", err)
	}
	if len(updated) != 1 || updated[0].ID != "product-1" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}
