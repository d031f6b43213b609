package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mtdstore-backend/internal/models"
	"mtdstore-backend/internal/store"
)

// ProductHandlers handles product CRUD endpoints
type ProductHandlers struct {
	store *store.Store
}

// NewProductHandlers creates a new product handlers instance
func NewProductHandlers(st *store.Store) *ProductHandlers {
	return &ProductHandlers{store: st}
}

// GetProducts returns the full product catalog
func (h *ProductHandlers) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Products())
}

// AddProduct creates a product. The new id is the current product count
// plus one.
func (h *ProductHandlers) AddProduct(c *gin.Context) {
	var req models.ProductCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Price == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "price is required"})
		return
	}
	if req.Quantity == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "quantity is required"})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Float64(),
		Image:       req.Image,
		Seller:      req.Seller,
		SellerID:    req.SellerID,
		Quantity:    req.Quantity.Int(),
		Category:    req.Category,
		CreatedAt:   time.Now().Format(models.CreatedAtLayout),
	}
	if product.Image == "" {
		product.Image = models.DefaultProductImage
	}
	if product.Category == "" {
		product.Category = models.DefaultProductCategory
	}

	created, err := h.store.AddProduct(product)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": created})
}

// UpdateProduct applies a partial update to an existing product
func (h *ProductHandlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	product, err := h.store.UpdateProduct(id, req)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// DeleteProduct removes a product by id
func (h *ProductHandlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if err := h.store.DeleteProduct(id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
