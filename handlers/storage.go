package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"tolet/services/storage"
	"tolet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler exposes the listing image upload endpoint.
type StorageHandler struct {
	Service storage.StorageService
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadFileHandler handles POST /api/storage/upload. It expects a multipart
// form with a "file" part and returns the permanent URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		logger.Error("Failed to save uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Service.UploadFile(c.Request.Context(), tmpPath, "listings")
	if err != nil {
		logger.Error("Failed to upload file to storage", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
