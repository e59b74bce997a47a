package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"bakehouse/services/storage"
	"bakehouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StorageHandler accepts cake-design and catalog image uploads.
type StorageHandler struct {
	Service storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadDesign stores a customer's cake-canvas export and returns its URL.
func (h *StorageHandler) UploadDesign(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing file", err.Error())
		return
	}
	file, err := header.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read file", err.Error())
		return
	}
	defer file.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	url, err := h.Service.UploadDesign(c.Request.Context(), file, name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "upload failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// UploadProductImage stores a catalog photo (admin) and returns its URL.
func (h *StorageHandler) UploadProductImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing file", err.Error())
		return
	}
	file, err := header.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read file", err.Error())
		return
	}
	defer file.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	url, err := h.Service.UploadProductImage(c.Request.Context(), file, name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "upload failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
