// Package httpsvc реализует HTTP API поверх доменных сервисов магазина.
package httpsvc

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/jcavendish/shop/internal/domain"
	"github.com/jcavendish/shop/internal/service/customers"
	"github.com/jcavendish/shop/internal/service/orders"
	"github.com/jcavendish/shop/internal/service/products"
)

// Лимит размера тела запроса: ни один из запросов API не бывает большим.
const maxBodyBytes = 64 * 1024

// Handler связывает HTTP-маршруты с доменными сервисами.
type Handler struct {
	customers *customers.Service
	products  *products.Service
	orders    *orders.Service
	logger    *log.Entry
}

// NewHandler конструирует обработчик с зависимостями.
func NewHandler(
	customersSvc *customers.Service,
	productsSvc *products.Service,
	ordersSvc *orders.Service,
	logger *log.Entry,
) *Handler {
	if logger == nil {
		logger = log.New().WithField("component", "http")
	}
	return &Handler{
		customers: customersSvc,
		products:  productsSvc,
		orders:    ordersSvc,
		logger:    logger,
	}
}

// Router собирает gin-роутер со всеми маршрутами API.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/customers", h.CreateCustomer)
	router.POST("/products", h.CreateProduct)
	router.POST("/orders", h.CreateOrder)
	router.GET("/orders/:id", h.GetOrder)
	router.GET("/customers/:id/orders", h.ListOrders)

	return router
}

// abortWithError транслирует доменную ошибку в HTTP-статус.
// Бизнес-ошибки оформления и ошибки валидации — 400, отсутствие — 404,
// конфликты уникальности — 409, всё остальное — 500 без деталей.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	switch {
	case isBusinessError(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.IsConflict(err):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.WithError(err).Error("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": http.StatusText(http.StatusInternalServerError)})
	}
}

func isBusinessError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrInvalidCustomer,
		domain.ErrInvalidProducts,
		domain.ErrInsufficientStock,
		domain.ErrCustomerIDRequired,
		domain.ErrItemsRequired,
		domain.ErrProductIDRequired,
		domain.ErrItemQtyInvalid,
		domain.ErrCustomerNameRequired,
		domain.ErrCustomerEmailRequired,
		domain.ErrProductNameRequired,
		domain.ErrProductPriceNegative,
		domain.ErrProductQtyNegative,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
