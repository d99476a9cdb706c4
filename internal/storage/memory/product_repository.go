package memory

import (
	"sync"

	"github.com/jcavendish/shop/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
// Порядок вставки сохраняется, чтобы FindAllByID возвращал товары
// в том же порядке, что и реляционное хранилище (created_at, id).
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
	order []string
}

// NewProductRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Create сохраняет новый товар, если ID ещё не занят. Имя не проверяется на уникальность.
func (r *productRepositoryInMemory) Create(product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[product.ID]; exists {
		return domain.ErrAlreadyExists
	}
	r.items[product.ID] = product
	r.order = append(r.order, product.ID)
	return nil
}

// FindByName возвращает первый товар с указанным именем или ErrProductNotFound.
func (r *productRepositoryInMemory) FindByName(name string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if product := r.items[id]; product.Name == name {
			return product, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// FindAllByID возвращает только существующие товары в порядке вставки.
// Недостающие ID молча пропускаются: сверка количества — забота вызывающей стороны.
func (r *productRepositoryInMemory) FindAllByID(ids []string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requested := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	result := make([]domain.Product, 0, len(ids))
	for _, id := range r.order {
		if _, ok := requested[id]; !ok {
			continue
		}
		result = append(result, r.items[id])
	}

	return result, nil
}

// UpdateQuantities перезаписывает остатки абсолютными значениями в одной критической секции.
// Товары без записи в хранилище молча пропускаются, как и в реляционной реализации.
func (r *productRepositoryInMemory) UpdateQuantities(updates []domain.QuantityUpdate) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets := make(map[string]int32, len(updates))
	for _, update := range updates {
		targets[update.ProductID] = update.Quantity
	}

	result := make([]domain.Product, 0, len(updates))
	for _, id := range r.order {
		quantity, ok := targets[id]
		if !ok {
			continue
		}
		product := r.items[id]
		product.Quantity = quantity
		r.items[id] = product
		result = append(result, product)
	}

	return result, nil
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
