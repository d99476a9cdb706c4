package memory

import (
	"sync"

	"github.com/jcavendish/shop/internal/domain"
)

// customerRepositoryInMemory — простая in-memory реализация CustomerRepository.
type customerRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Customer
}

// NewCustomerRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewCustomerRepository() domain.CustomerRepository {
	return &customerRepositoryInMemory{
		items: make(map[string]domain.Customer),
	}
}

// Create сохраняет нового покупателя, если ID ещё не занят.
func (r *customerRepositoryInMemory) Create(customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[customer.ID]; exists {
		return domain.ErrAlreadyExists
	}
	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.items[customer.ID] = customer
	return nil
}

// Get возвращает покупателя или ErrCustomerNotFound, если его нет.
func (r *customerRepositoryInMemory) Get(id string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

// GetByEmail возвращает первого покупателя с указанным email или ErrCustomerNotFound.
func (r *customerRepositoryInMemory) GetByEmail(email string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.items {
		if customer.Email == email {
			return customer, nil
		}
	}
	return domain.Customer{}, domain.ErrCustomerNotFound
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
