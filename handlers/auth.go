package handlers

import (
	"net/http"
	"strings"

	"bakehouse/middleware"
	"bakehouse/models"
	"bakehouse/services/customer"
	"bakehouse/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves account registration and sign-in.
type AuthHandler struct {
	Service customer.CustomerService
}

func NewAuthHandler(svc customer.CustomerService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Register creates a new customer account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignIn authenticates a customer and issues a token.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	resp, err := h.Service.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "sign-in failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut revokes the current session token.
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.Service.RevokeToken(c.Request.Context(), token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "sign-out failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"signedOut": true})
}

// UpdateFCMToken stores the device push token for the signed-in customer.
func (h *AuthHandler) UpdateFCMToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	customerID := c.GetString(middleware.ContextCustomerID)
	if err := h.Service.UpdateFCMToken(c.Request.Context(), customerID, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not update token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
