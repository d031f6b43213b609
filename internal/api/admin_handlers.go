package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mtdstore-backend/internal/models"
	"mtdstore-backend/internal/store"
)

// AdminHandlers handles user management and the admin dashboard
type AdminHandlers struct {
	store *store.Store
}

// NewAdminHandlers creates a new admin handlers instance
func NewAdminHandlers(st *store.Store) *AdminHandlers {
	return &AdminHandlers{store: st}
}

// GetAllUsers lists the built-in accounts followed by the stored users.
// Built-ins are listed without their passwords.
func (h *AdminHandlers) GetAllUsers(c *gin.Context) {
	users := []models.User{}
	for _, u := range models.MainUsers() {
		users = append(users, models.User{
			Username: u.Username,
			Role:     u.Role,
			Status:   models.UserStatusActive,
			JoinDate: u.JoinDate,
		})
	}
	users = append(users, h.store.Users()...)
	c.JSON(http.StatusOK, users)
}

// AddUser creates a stored user. The username must be unique across
// both the built-in and the stored sets.
func (h *AdminHandlers) AddUser(c *gin.Context) {
	var req models.UserCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleBuyer
	}

	user, err := h.store.AddUser(models.User{
		Username: req.Username,
		Password: req.Password,
		Role:     role,
		Status:   models.UserStatusActive,
		JoinDate: time.Now().Format(models.DateLayout),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Username already exists"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// DeleteUser removes a stored user; the demo accounts always refuse
func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	username := c.Param("username")

	if err := h.store.DeleteUser(username); err != nil {
		switch {
		case errors.Is(err, store.ErrDemoUser):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Cannot delete demo users"})
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User not found"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

// GetAdminStats returns the aggregate dashboard counters
func (h *AdminHandlers) GetAdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   h.store.Stats(),
	})
}
