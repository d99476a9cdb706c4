package customers

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jcavendish/shop/internal/domain"
)

// Service реализует регистрацию и выдачу покупателей.
type Service struct {
	customers domain.CustomerRepository
	publisher domain.CatalogEventPublisher // опционально, nil — события не публикуются
	logger    *log.Entry
}

// NewService конструирует сервис с зависимостями. publisher может быть nil.
func NewService(customers domain.CustomerRepository, publisher domain.CatalogEventPublisher, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "customers")
	}
	return &Service{customers: customers, publisher: publisher, logger: logger}
}

// CreateCustomer регистрирует покупателя. Email должен быть свободен:
// уникальность проверяется здесь, а не в хранилище.
func (s *Service) CreateCustomer(name, email string) (domain.Customer, error) {
	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if errs := customer.ValidateInvariants(); len(errs) > 0 {
		return domain.Customer{}, errors.Join(errs...)
	}

	if _, err := s.customers.GetByEmail(email); err == nil {
		return domain.Customer{}, domain.ErrEmailAlreadyUsed
	} else if !errors.Is(err, domain.ErrCustomerNotFound) {
		s.logger.WithError(err).Error("failed to check email uniqueness")
		return domain.Customer{}, fmt.Errorf("check email: %w", err)
	}

	if err := s.customers.Create(customer); err != nil {
		s.logger.WithError(err).WithField("customer_id", customer.ID).Error("failed to create customer")
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	s.publishCreated(customer)

	return customer, nil
}

// publishCreated отправляет событие customer.created, если publisher настроен.
// Ошибка публикации не влияет на результат регистрации.
func (s *Service) publishCreated(customer domain.Customer) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.CustomerCreated(customer); err != nil {
		s.logger.WithError(err).WithField("customer_id", customer.ID).Warn("failed to publish customer.created event")
	}
}

// GetCustomer возвращает покупателя или ErrCustomerNotFound.
func (s *Service) GetCustomer(id string) (domain.Customer, error) {
	if id == "" {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return s.customers.Get(id)
}
