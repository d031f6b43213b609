package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"mtdstore-backend/config"
	"mtdstore-backend/internal/utils"
)

// UploadHandlers handles image uploads for product listings
type UploadHandlers struct {
	cfg *config.Config
}

// NewUploadHandlers creates a new upload handlers instance
func NewUploadHandlers(cfg *config.Config) *UploadHandlers {
	return &UploadHandlers{cfg: cfg}
}

// UploadFile stores a multipart image upload under the upload directory
// and returns its served URL. Filenames are timestamp-prefixed so two
// uploads with the same name cannot collide.
func (h *UploadHandlers) UploadFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "No file selected"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "No file selected"})
		return
	}

	if !h.cfg.IsAllowedExtension(header.Filename) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid file type"})
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0755); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to create upload directory"})
		return
	}

	filename := utils.TimestampPrefix(time.Now()) + utils.SecureFilename(header.Filename)
	dst, err := os.Create(filepath.Join(h.cfg.UploadDir, filename))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to create file: " + err.Error()})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to save file: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"file_url": "/uploads/" + filename,
	})
}
