package httpsvc

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcavendish/shop/internal/domain"
)

type createCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toCustomerResponse(customer domain.Customer) customerResponse {
	return customerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
}

// CreateCustomer обрабатывает POST /customers.
func (h *Handler) CreateCustomer(c *gin.Context) {
	if c.Request.ContentLength > maxBodyBytes {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "request body too large"})
		return
	}

	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := h.customers.CreateCustomer(req.Name, req.Email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}
