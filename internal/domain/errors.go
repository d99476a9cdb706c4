package domain

import "errors"

var (
	// ErrInvalidCustomer возвращается, если покупатель из запроса на заказ не найден.
	ErrInvalidCustomer = errors.New("invalid customer")
	// ErrInvalidProducts возвращается, если хотя бы один товар из запроса не существует.
	ErrInvalidProducts = errors.New("one or more products are invalid")
	// ErrInsufficientStock возвращается, если заказанное количество превышает остаток.
	ErrInsufficientStock = errors.New("insufficient product stock")

	// ErrCustomerNotFound возвращается, если покупатель не найден в репозитории.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound возвращается, если товар не найден в репозитории.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmailAlreadyUsed — покупатель с таким email уже зарегистрирован.
	ErrEmailAlreadyUsed = errors.New("email is already used")
	// ErrProductNameTaken — товар с таким именем уже существует в каталоге.
	ErrProductNameTaken = errors.New("product name is already taken")
	// ErrAlreadyExists — запись с таким ID уже существует в хранилище.
	ErrAlreadyExists = errors.New("record already exists")

	// Ошибка отсутствующего имени покупателя.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// Ошибка отсутствующего email покупателя.
	ErrCustomerEmailRequired = errors.New("customer email is required")
	// Ошибка отсутствующего идентификатора покупателя в заказе.
	ErrCustomerIDRequired = errors.New("customer_id is required")
	// Ошибка отсутствующего имени товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceNegative = errors.New("product price must be non-negative")
	// Ошибка отрицательного остатка товара.
	ErrProductQtyNegative = errors.New("product quantity must be non-negative")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отсутствующего идентификатора товара в позиции.
	ErrProductIDRequired = errors.New("product_id is required")
	// Ошибка при некорректном количестве в позиции (<= 0).
	ErrItemQtyInvalid = errors.New("item qty must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка отрицательной суммы заказа.
	ErrAmountNegative = errors.New("amount_minor must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order amount does not match items sum")
)

// IsNotFound проверяет, является ли ошибка одним из not-found сентинелов.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}

// IsConflict проверяет, связана ли ошибка с нарушением уникальности.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrEmailAlreadyUsed) ||
		errors.Is(err, ErrProductNameTaken)
}
