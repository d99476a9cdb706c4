package domain

import "time"

// OrderProduct представляет одну позицию заказа.
// Qty фиксирует заказанное количество и не зависит от остатка товара на складе.
type OrderProduct struct {
	// ID позиции нужен для однозначной идентификации и аудита.
	ID string
	// ProductID — ссылка на товар каталога, существовавший на момент оформления.
	ProductID string
	// PriceMinor — цена за единицу, зафиксированная в момент оформления заказа.
	PriceMinor int64
	// Qty — заказанное количество единиц.
	Qty int32
	// CreatedAt фиксирует момент добавления позиции в заказ.
	CreatedAt time.Time
}

// Order агрегирует оформленный заказ и его позиции.
// После создания заказ неизменяем: операций обновления или отмены нет.
type Order struct {
	ID         string
	CustomerID string
	// AmountMinor — сумма заказа, равная сумме qty * price по позициям.
	AmountMinor int64
	Items       []OrderProduct
	CreatedAt   time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerIDRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	if o.AmountMinor < 0 {
		errs = append(errs, ErrAmountNegative)
	}

	// Сверяем сумму заказа с суммой позиций: qty * price.
	var calc int64
	for _, item := range o.Items {
		if item.ProductID == "" {
			errs = append(errs, ErrProductIDRequired)
		}
		if item.Qty <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.PriceMinor < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
		calc += int64(item.Qty) * item.PriceMinor
	}
	if calc != o.AmountMinor {
		errs = append(errs, ErrAmountMismatch)
	}

	return errs
}
