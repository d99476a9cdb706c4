package products

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jcavendish/shop/internal/domain"
)

// Service реализует ведение каталога товаров.
type Service struct {
	products  domain.ProductRepository
	publisher domain.CatalogEventPublisher // опционально, nil — события не публикуются
	logger    *log.Entry
}

// NewService конструирует сервис с зависимостями. publisher может быть nil.
func NewService(products domain.ProductRepository, publisher domain.CatalogEventPublisher, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "products")
	}
	return &Service{products: products, publisher: publisher, logger: logger}
}

// CreateProduct добавляет товар в каталог. Имя должно быть свободно:
// репозиторий уникальность не навязывает, проверка живёт здесь.
func (s *Service) CreateProduct(name string, priceMinor int64, quantity int32) (domain.Product, error) {
	now := time.Now().UTC()
	product := domain.Product{
		ID:         uuid.NewString(),
		Name:       name,
		PriceMinor: priceMinor,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return domain.Product{}, errors.Join(errs...)
	}

	// Отсутствие товара с таким именем — штатный исход, а не ошибка.
	if _, err := s.products.FindByName(name); err == nil {
		return domain.Product{}, domain.ErrProductNameTaken
	} else if !errors.Is(err, domain.ErrProductNotFound) {
		s.logger.WithError(err).Error("failed to check product name uniqueness")
		return domain.Product{}, fmt.Errorf("check product name: %w", err)
	}

	if err := s.products.Create(product); err != nil {
		s.logger.WithError(err).WithField("product_id", product.ID).Error("failed to create product")
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.publishCreated(product)

	return product, nil
}

// publishCreated отправляет событие product.created, если publisher настроен.
// Ошибка публикации не влияет на результат добавления товара.
func (s *Service) publishCreated(product domain.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.ProductCreated(product); err != nil {
		s.logger.WithError(err).WithField("product_id", product.ID).Warn("failed to publish product.created event")
	}
}

// FindByName возвращает товар по имени или ErrProductNotFound.
func (s *Service) FindByName(name string) (domain.Product, error) {
	if name == "" {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return s.products.FindByName(name)
}
