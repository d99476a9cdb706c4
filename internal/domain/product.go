package domain

import "time"

// Product — товар каталога. Quantity отражает остаток на складе
// и уменьшается при оформлении заказов.
type Product struct {
	ID   string
	Name string
	// PriceMinor — цена за единицу в минимальных денежных единицах (например, центы).
	PriceMinor int64
	// Quantity — доступный остаток, не может быть отрицательным.
	Quantity  int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.PriceMinor < 0 {
		errs = append(errs, ErrProductPriceNegative)
	}
	if p.Quantity < 0 {
		errs = append(errs, ErrProductQtyNegative)
	}

	return errs
}

// QuantityUpdate задаёт абсолютное целевое значение остатка для товара.
// Это не дельта: вызывающая сторона обязана заранее вычислить остаток после списания.
type QuantityUpdate struct {
	ProductID string
	Quantity  int32
}
