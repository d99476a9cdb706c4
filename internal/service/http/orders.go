package httpsvc

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcavendish/shop/internal/domain"
	"github.com/jcavendish/shop/internal/service/orders"
)

type createOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Products   []orderItemRequest `json:"products"`
}

type orderItemRequest struct {
	ID       string `json:"id"`
	Quantity int32  `json:"quantity"`
}

type orderItemResponse struct {
	ProductID string `json:"product_id"`
	// Price — цена единицы на момент оформления, в минимальных единицах.
	Price    int64 `json:"price"`
	Quantity int32 `json:"quantity"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	AmountMinor int64               `json:"amount_minor"`
	Items       []orderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

func toOrderResponse(order domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Price:     item.PriceMinor,
			Quantity:  item.Qty,
		})
	}
	return orderResponse{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		AmountMinor: order.AmountMinor,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}

// CreateOrder обрабатывает POST /orders.
func (h *Handler) CreateOrder(c *gin.Context) {
	if c.Request.ContentLength > maxBodyBytes {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "request body too large"})
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	requested := make([]orders.RequestedItem, 0, len(req.Products))
	for _, item := range req.Products {
		requested = append(requested, orders.RequestedItem{
			ProductID: item.ID,
			Qty:       item.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(req.CustomerID, requested)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// GetOrder обрабатывает GET /orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.FindOrder(c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ListOrders обрабатывает GET /customers/:id/orders.
// Параметр limit ограничивает выборку; без него возвращаются все заказы.
func (h *Handler) ListOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	list, err := h.orders.ListOrders(c.Param("id"), limit)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	responses := make([]orderResponse, 0, len(list))
	for _, order := range list {
		responses = append(responses, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, gin.H{"orders": responses})
}
