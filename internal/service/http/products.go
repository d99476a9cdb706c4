package httpsvc

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcavendish/shop/internal/domain"
)

type createProductRequest struct {
	Name string `json:"name"`
	// Price — цена за единицу в минимальных денежных единицах.
	Price    int64 `json:"price"`
	Quantity int32 `json:"quantity"`
}

type productResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Quantity  int32     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func toProductResponse(product domain.Product) productResponse {
	return productResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.PriceMinor,
		Quantity:  product.Quantity,
		CreatedAt: product.CreatedAt,
	}
}

// CreateProduct обрабатывает POST /products.
func (h *Handler) CreateProduct(c *gin.Context) {
	if c.Request.ContentLength > maxBodyBytes {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "request body too large"})
		return
	}

	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.products.CreateProduct(req.Name, req.Price, req.Quantity)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}
