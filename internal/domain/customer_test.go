package domain_test

import (
	"testing"

	"github.com/jcavendish/shop/internal/domain"
)

func TestCustomerValidateInvariants(t *testing.T) {
	customer := domain.Customer{ID: "customer-1", Name: "Alice", Email: "alice@example.com"}
	if errs := customer.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}

	customer.Name = ""
	customer.Email = ""
	errs := customer.ValidateInvariants()
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %d: %v", len(errs), errs)
	}
}
