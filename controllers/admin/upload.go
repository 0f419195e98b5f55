package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const publicUploadPath = "/uploads"

// UploadImage saves a multipart image under uploadDir and returns the public
// URL the storefront can reference from product records.
// POST /admin/upload
func UploadImage(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")

		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
		savePath := filepath.Join(uploadDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"imageUrl": fmt.Sprintf("%s/%s", publicUploadPath, filename),
		})
	}
}
