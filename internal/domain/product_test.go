package domain_test

import (
	"testing"

	"github.com/jcavendish/shop/internal/domain"
)

func TestProductValidateInvariants_Ok(t *testing.T) {
	product := domain.Product{ID: "product-1", Name: "keyboard", PriceMinor: 500, Quantity: 10}
	if errs := product.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestProductValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(p *domain.Product)
	}{
		{
			name: "no name",
			mut: func(p *domain.Product) {
				p.Name = ""
			},
		},
		{
			name: "negative price",
			mut: func(p *domain.Product) {
				p.PriceMinor = -1
			},
		},
		{
			name: "negative quantity",
			mut: func(p *domain.Product) {
				p.Quantity = -1
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := domain.Product{ID: "product-1", Name: "keyboard", PriceMinor: 500, Quantity: 10}
			tc.mut(&product)
			if errs := product.ValidateInvariants(); len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
		})
	}
}
