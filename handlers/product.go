package handlers

import (
	"net/http"

	"bakehouse/models"
	"bakehouse/services/catalog"
	"bakehouse/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the cake catalog.
type ProductHandler struct {
	Service catalog.CatalogService
}

func NewProductHandler(svc catalog.CatalogService) *ProductHandler {
	return &ProductHandler{Service: svc}
}

// ListProducts returns the active catalog.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list products", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct returns one catalog cake.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.Service.Get(c.Request.Context(), c.Param("productID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "product not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a catalog cake (admin).
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.Create(c.Request.Context(), &product); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not create product", err.Error())
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces a catalog cake (admin).
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	product.ID = c.Param("productID")
	if err := h.Service.Update(c.Request.Context(), &product); err != nil {
		utils.JSONError(c, http.StatusNotFound, "could not update product", err.Error())
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog cake (admin).
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("productID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "could not delete product", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("productID")})
}
