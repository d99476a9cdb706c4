package domain

// CustomerRepository описывает требования к хранилищу покупателей.
type CustomerRepository interface {
	// Create сохраняет нового покупателя. Возвращает ErrAlreadyExists, если ID занят.
	Create(customer Customer) error
	// Get возвращает покупателя по идентификатору или ErrCustomerNotFound.
	Get(id string) (Customer, error)
	// GetByEmail возвращает покупателя по email или ErrCustomerNotFound.
	GetByEmail(email string) (Customer, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	// Create сохраняет новый товар. Уникальность имени здесь не проверяется.
	Create(product Product) error
	// FindByName возвращает товар по имени или ErrProductNotFound.
	// Отсутствие товара — штатный исход, вызывающая сторона сама решает, ошибка ли это.
	FindByName(name string) (Product, error)
	// FindAllByID возвращает только существующие товары в порядке хранилища.
	// Недостающие ID не сигнализируются: вызывающая сторона сверяет количество.
	FindAllByID(ids []string) ([]Product, error)
	// UpdateQuantities перезаписывает остатки абсолютными значениями одной пачкой.
	// Предусловие: значения уже вычислены после списания, это не дельты.
	UpdateQuantities(updates []QuantityUpdate) ([]Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ вместе с позициями. Возвращает ErrAlreadyExists, если ID занят.
	Create(order Order) error
	// Get возвращает заказ с позициями или ErrOrderNotFound.
	Get(id string) (Order, error)
	// ListByCustomer возвращает заказы покупателя с опциональным ограничением на количество.
	ListByCustomer(customerID string, limit int) ([]Order, error)
}
