package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jcavendish/shop/internal/domain"
	"github.com/jcavendish/shop/internal/metrics"
)

// RequestedItem — позиция входящего запроса на оформление заказа.
type RequestedItem struct {
	ProductID string
	Qty       int32
}

// Service реализует сценарий оформления заказа поверх трёх репозиториев.
// Сервис stateless: всё состояние живёт во внешнем хранилище.
type Service struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    domain.OrderRepository
	publisher domain.OrderEventPublisher // опционально, nil — события не публикуются
	metrics   *metrics.OrderMetrics
	logger    *log.Entry
}

// NewService конструирует сервис с зависимостями. publisher может быть nil.
func NewService(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	publisher domain.OrderEventPublisher,
	logger *log.Entry,
) *Service {
	svc := newService(customers, products, orders, publisher, logger)
	svc.metrics = metrics.NewOrderMetrics()
	return svc
}

// NewServiceWithoutMetrics конструирует сервис без метрик (для тестов).
func NewServiceWithoutMetrics(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	publisher domain.OrderEventPublisher,
	logger *log.Entry,
) *Service {
	return newService(customers, products, orders, publisher, logger)
}

func newService(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	publisher domain.OrderEventPublisher,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &Service{
		customers: customers,
		products:  products,
		orders:    orders,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrder оформляет заказ: проверяет покупателя и товары, списывает остатки
// и сохраняет заказ с позициями. Любая бизнес-ошибка прерывает сценарий целиком,
// частичное оформление невозможно.
//
// Списание остатков выполняется ДО сохранения заказа и не обёрнуто общей
// транзакцией с ним. При сбое сохранения сервис компенсирует списание,
// возвращая прежние остатки; компенсация best-effort (см. DESIGN.md).
func (s *Service) CreateOrder(customerID string, requested []RequestedItem) (domain.Order, error) {
	start := time.Now()
	order, err := s.createOrder(customerID, requested)
	if s.metrics != nil {
		s.metrics.RecordCreateDuration(time.Since(start))
		if err != nil {
			s.metrics.RecordOrderFailed(failureReason(err))
		}
	}
	return order, err
}

func (s *Service) createOrder(customerID string, requested []RequestedItem) (domain.Order, error) {
	if customerID == "" {
		return domain.Order{}, domain.ErrCustomerIDRequired
	}
	if len(requested) == 0 {
		return domain.Order{}, domain.ErrItemsRequired
	}

	// Схлопываем повторяющиеся товары: количество берётся из последнего
	// вхождения (last-write-wins), порядок первого вхождения сохраняется.
	qtyByID := make(map[string]int32, len(requested))
	ids := make([]string, 0, len(requested))
	for _, item := range requested {
		if item.ProductID == "" {
			return domain.Order{}, domain.ErrProductIDRequired
		}
		if item.Qty <= 0 {
			return domain.Order{}, fmt.Errorf("%w: product %s", domain.ErrItemQtyInvalid, item.ProductID)
		}
		if _, seen := qtyByID[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		qtyByID[item.ProductID] = item.Qty
	}

	customer, err := s.customers.Get(customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return domain.Order{}, domain.ErrInvalidCustomer
		}
		s.logger.WithError(err).WithField("customer_id", customerID).Error("failed to load customer")
		return domain.Order{}, fmt.Errorf("load customer: %w", err)
	}

	found, err := s.products.FindAllByID(ids)
	if err != nil {
		s.logger.WithError(err).Error("failed to load products")
		return domain.Order{}, fmt.Errorf("load products: %w", err)
	}
	// Репозиторий возвращает только существующие товары, поэтому расхождение
	// количеств означает хотя бы один несуществующий ID.
	if len(found) != len(ids) {
		return domain.Order{}, domain.ErrInvalidProducts
	}

	// Проверяем остатки в порядке, который вернуло хранилище; первое нарушение
	// прерывает оформление, списания ещё не было.
	for _, product := range found {
		if qtyByID[product.ID] > product.Quantity {
			return domain.Order{}, fmt.Errorf("%w: product %s", domain.ErrInsufficientStock, product.ID)
		}
	}

	prior := make([]domain.QuantityUpdate, 0, len(found))
	updates := make([]domain.QuantityUpdate, 0, len(found))
	var decremented int64
	for _, product := range found {
		qty := qtyByID[product.ID]
		prior = append(prior, domain.QuantityUpdate{ProductID: product.ID, Quantity: product.Quantity})
		updates = append(updates, domain.QuantityUpdate{ProductID: product.ID, Quantity: product.Quantity - qty})
		decremented += int64(qty)
	}

	if _, err := s.products.UpdateQuantities(updates); err != nil {
		s.logger.WithError(err).Error("failed to update product quantities")
		return domain.Order{}, fmt.Errorf("update quantities: %w", err)
	}

	now := time.Now().UTC()
	items := make([]domain.OrderProduct, 0, len(found))
	var amountSum int64
	for _, product := range found {
		qty := qtyByID[product.ID]
		items = append(items, domain.OrderProduct{
			ID:         uuid.NewString(),
			ProductID:  product.ID,
			PriceMinor: product.PriceMinor,
			Qty:        qty,
			CreatedAt:  now,
		})
		amountSum += int64(qty) * product.PriceMinor
	}

	order := domain.Order{
		ID:          uuid.NewString(),
		CustomerID:  customer.ID,
		AmountMinor: amountSum,
		Items:       items,
		CreatedAt:   now,
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		s.restoreQuantities(order.ID, prior)
		return domain.Order{}, errors.Join(errs...)
	}

	if err := s.orders.Create(order); err != nil {
		// Остатки уже списаны, а заказа нет: возвращаем прежние значения.
		s.restoreQuantities(order.ID, prior)
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to persist order")
		return domain.Order{}, fmt.Errorf("persist order: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
		s.metrics.RecordStockDecremented(decremented)
	}
	s.publishCreated(order)

	return order, nil
}

// FindOrder возвращает заказ с позициями или ErrOrderNotFound.
func (s *Service) FindOrder(id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return s.orders.Get(id)
}

// ListOrders возвращает заказы покупателя, ограничивая выборку limit (если >0).
func (s *Service) ListOrders(customerID string, limit int) ([]domain.Order, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerIDRequired
	}
	return s.orders.ListByCustomer(customerID, limit)
}

// restoreQuantities компенсирует уже применённое списание прежними остатками.
// При сбое компенсации остатки остаются списанными без заказа; это логируется
// и не скрывается за ошибкой оформления.
func (s *Service) restoreQuantities(orderID string, prior []domain.QuantityUpdate) {
	if _, err := s.products.UpdateQuantities(prior); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).
			Error("failed to restore product quantities after order persist failure")
		return
	}
	s.logger.WithField("order_id", orderID).Warn("order persist failed, stock decrement rolled back")
}

// publishCreated отправляет событие order.created, если publisher настроен.
// Ошибка публикации не влияет на результат оформления.
func (s *Service) publishCreated(order domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.OrderCreated(order); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order.created event")
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCustomer):
		return metrics.FailureReasonInvalidCustomer
	case errors.Is(err, domain.ErrInvalidProducts):
		return metrics.FailureReasonInvalidProducts
	case errors.Is(err, domain.ErrInsufficientStock):
		return metrics.FailureReasonInsufficientStock
	case errors.Is(err, domain.ErrCustomerIDRequired),
		errors.Is(err, domain.ErrItemsRequired),
		errors.Is(err, domain.ErrProductIDRequired),
		errors.Is(err, domain.ErrItemQtyInvalid):
		return metrics.FailureReasonValidation
	default:
		return metrics.FailureReasonInternal
	}
}
