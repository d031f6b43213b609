package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mtdstore-backend/internal/models"
	"mtdstore-backend/internal/store"
	"mtdstore-backend/internal/utils"
)

// PaymentHandlers handles the UPI mapping and the simulated payment flow
type PaymentHandlers struct {
	store          *store.Store
	commissionRate float64
}

// NewPaymentHandlers creates a new payment handlers instance
func NewPaymentHandlers(st *store.Store, commissionRate float64) *PaymentHandlers {
	return &PaymentHandlers{
		store:          st,
		commissionRate: commissionRate,
	}
}

// GetSellerUPI returns a seller's UPI address, empty when unset
func (h *PaymentHandlers) GetSellerUPI(c *gin.Context) {
	sellerID := c.Query("seller_id")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"upi_id":  h.store.UPI(sellerID),
	})
}

// SetSellerUPI upserts a seller's UPI address; the last write wins
func (h *PaymentHandlers) SetSellerUPI(c *gin.Context) {
	var req models.UPIUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid data"})
		return
	}
	if req.SellerID == "" || req.UPIID == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid data"})
		return
	}

	if err := h.store.SetUPI(req.SellerID, req.UPIID); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "UPI ID updated successfully"})
}

// ProcessPayment marks an order paid, splitting the amount into the
// platform commission and the seller payout, and decrements the ordered
// product's stock. An order id that matches nothing still yields a
// payment response; the mutation is simply a no-op.
func (h *PaymentHandlers) ProcessPayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Amount == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "amount is required"})
		return
	}

	amount := req.Amount.Float64()
	commission := amount * h.commissionRate
	sellerAmount := amount * (1 - h.commissionRate)
	transactionID := utils.GenerateTransactionID()

	orderID := 0
	if req.OrderID != nil {
		orderID = req.OrderID.Int()
	}

	if err := h.store.CompletePayment(orderID, transactionID, commission, sellerAmount); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"transaction_id":    transactionID,
		"commission":        commission,
		"seller_amount":     sellerAmount,
		"expected_delivery": time.Now().Add(24 * time.Hour).Format(models.DeliveryHourLayout),
	})
}

// GetAdminCommission returns the platform's total commission over
// completed orders
func (h *PaymentHandlers) GetAdminCommission(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"total_commission": h.store.TotalCommission(),
	})
}
