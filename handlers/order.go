package handlers

import (
	"errors"
	"net/http"

	"bakehouse/middleware"
	"bakehouse/models"
	"bakehouse/services/order"
	"bakehouse/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the customer-facing order endpoints.
type OrderHandler struct {
	Service order.OrderService
}

func NewOrderHandler(svc order.OrderService) *OrderHandler {
	return &OrderHandler{Service: svc}
}

// orderErrorStatus maps service error codes to HTTP statuses.
func orderErrorStatus(err error) int {
	var oe *order.OrderError
	if !errors.As(err, &oe) {
		return http.StatusInternalServerError
	}
	switch oe.Code {
	case order.CodeNotFound:
		return http.StatusNotFound
	case order.CodeForbidden:
		return http.StatusForbidden
	case order.CodeTooSoon, order.CodeDayFull, order.CodeTimeBlocked,
		order.CodeInvalidTime, order.CodeCancelWindowClosed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CreateOrder places a new order for the authenticated customer.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	customerID := c.GetString(middleware.ContextCustomerID)
	ord, err := h.Service.Create(c.Request.Context(), customerID, input)
	if err != nil {
		utils.JSONError(c, orderErrorStatus(err), "could not place order", err.Error())
		return
	}
	c.JSON(http.StatusCreated, ord)
}

// ListMyOrders lists the authenticated customer's orders.
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	orders, err := h.Service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns one order with its items.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	ord, items, err := h.Service.GetWithItems(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		utils.JSONError(c, orderErrorStatus(err), "could not load order", err.Error())
		return
	}
	customerID := c.GetString(middleware.ContextCustomerID)
	if ord.CustomerID != customerID && !c.GetBool(middleware.ContextIsAdmin) {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "order belongs to another customer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": ord, "items": items})
}

// CancelOrder cancels the customer's own order when the window allows it.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	if err := h.Service.Cancel(c.Request.Context(), c.Param("orderID"), customerID); err != nil {
		utils.JSONError(c, orderErrorStatus(err), "could not cancel order", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.OrderStatusCancelled})
}
