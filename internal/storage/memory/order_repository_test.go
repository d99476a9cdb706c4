package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jcavendish/shop/internal/domain"
	"github.com/jcavendish/shop/internal/storage/memory"
)

func newOrder(id string) domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:          id,
		CustomerID:  "customer-1",
		AmountMinor: 500,
		Items: []domain.OrderProduct{
			{ID: "item-1", ProductID: "product-1", PriceMinor: 100, Qty: 5, CreatedAt: now},
		},
		CreatedAt: now,
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")

	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, stored.ID)
	}
	if len(stored.Items) != 1 || stored.Items[0].ProductID != "product-1" {
		t.Fatalf("unexpected items: %+v", stored.Items)
	}
}

func TestOrderRepository_CreateDuplicateID(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")

	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(order); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestOrderRepository_GetMissing(t *testing.T) {
	repo := memory.NewOrderRepository()

	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_GetReturnsCopy(t *testing.T) {
	repo := memory.NewOrderRepository()
	if err := repo.Create(newOrder("order-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := repo.Get("order-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	first.Items[0].Qty = 42

	second, err := repo.Get("order-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if second.Items[0].Qty != 5 {
		t.Fatalf("stored order mutated through returned copy: qty=%d", second.Items[0].Qty)
	}
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	repo := memory.NewOrderRepository()
	if err := repo.Create(newOrder("order-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(newOrder("order-2")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, err := repo.ListByCustomer("customer-1", 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	limited, err := repo.ListByCustomer("customer-1", 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 order, got %d", len(limited))
	}

	none, err := repo.ListByCustomer("customer-2", 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no orders, got %d", len(none))
	}
}
