package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mtdstore-backend/internal/models"
	"mtdstore-backend/internal/services"
	"mtdstore-backend/internal/store"
)

// AuthHandlers handles authentication endpoints
type AuthHandlers struct {
	store       *store.Store
	authService *services.AuthService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(st *store.Store, jwtSecret string, jwtExpiration int) *AuthHandlers {
	return &AuthHandlers{
		store:       st,
		authService: services.NewAuthService(jwtSecret, jwtExpiration),
	}
}

// Login authenticates a user against the built-in accounts and the
// stored user file
func (h *AuthHandlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	user, ok := h.store.Authenticate(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		// The session token is advisory; a signing failure should not
		// block the login itself.
		log.Printf("Failed to generate session token for %s: %v", user.Username, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"role":     user.Role,
		"username": user.Username,
		"token":    token,
		"message":  fmt.Sprintf("Welcome back, %s!", user.Username),
	})
}
