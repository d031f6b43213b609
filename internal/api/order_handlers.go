package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mtdstore-backend/internal/models"
	"mtdstore-backend/internal/store"
)

// OrderHandlers handles order endpoints
type OrderHandlers struct {
	store *store.Store
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(st *store.Store) *OrderHandlers {
	return &OrderHandlers{store: st}
}

// GetOrders returns every order in the store
func (h *OrderHandlers) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Orders())
}

// CreateOrder places an order. The product name and image are stored as
// snapshots; the referenced product id is not validated.
func (h *OrderHandlers) CreateOrder(c *gin.Context) {
	var req models.OrderCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Quantity == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "quantity is required"})
		return
	}
	if req.Price == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "price is required"})
		return
	}
	if req.Total == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "total is required"})
		return
	}

	productID := 0
	if req.ProductID != nil {
		productID = req.ProductID.Int()
	}

	now := time.Now()
	order := models.Order{
		ProductID:        productID,
		ProductName:      req.ProductName,
		ProductImage:     req.ProductImage,
		Buyer:            req.Buyer,
		Seller:           req.Seller,
		Quantity:         req.Quantity.Int(),
		Price:            req.Price.Float64(),
		Total:            req.Total.Float64(),
		Status:           models.OrderStatusPendingPayment,
		PaymentStatus:    models.PaymentStatusPending,
		OrderDate:        now.Format(models.TimestampLayout),
		ExpectedDelivery: now.Add(24 * time.Hour).Format(models.TimestampLayout),
	}

	created, err := h.store.CreateOrder(order)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": created})
}

// GetUserOrders returns the orders placed by a buyer
func (h *OrderHandlers) GetUserOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.OrdersByBuyer(c.Param("username")))
}

// GetSellerOrders returns the orders addressed to a seller
func (h *OrderHandlers) GetSellerOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.OrdersBySeller(c.Param("sellerId")))
}
