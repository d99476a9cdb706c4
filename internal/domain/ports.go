package domain

// OrderEventPublisher публикует событие об успешно оформленном заказе.
// Публикация best-effort: ошибка публикации не отменяет уже созданный заказ.
type OrderEventPublisher interface {
	OrderCreated(order Order) error
}

// CatalogEventPublisher публикует события каталога: регистрацию покупателя
// и добавление товара. Публикация best-effort, как и для заказов.
type CatalogEventPublisher interface {
	CustomerCreated(customer Customer) error
	ProductCreated(product Product) error
}
