package handlers

import (
	"net/http"
	"time"

	blockedRepo "bakehouse/database/repository/blocked"
	"bakehouse/models"
	"bakehouse/services/availability"
	"bakehouse/services/calendar"
	"bakehouse/services/order"
	"bakehouse/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the operator endpoints: order review and blocked
// interval management.
type AdminHandler struct {
	Orders   order.OrderService
	Blocked  blockedRepo.BlockedRepository
	Calendar *calendar.Adapter
}

func NewAdminHandler(orders order.OrderService, blocked blockedRepo.BlockedRepository, cal *calendar.Adapter) *AdminHandler {
	return &AdminHandler{Orders: orders, Blocked: blocked, Calendar: cal}
}

// ListOrders lists orders by ?status= (default Pending).
func (h *AdminHandler) ListOrders(c *gin.Context) {
	status := c.DefaultQuery("status", models.OrderStatusPending)
	orders, err := h.Orders.ListByStatus(c.Request.Context(), status)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ApproveOrder moves a pending order to Approved.
func (h *AdminHandler) ApproveOrder(c *gin.Context) {
	if err := h.Orders.Approve(c.Request.Context(), c.Param("orderID")); err != nil {
		utils.JSONError(c, orderErrorStatus(err), "could not approve order", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.OrderStatusApproved})
}

// DeliverOrder marks an order Delivered.
func (h *AdminHandler) DeliverOrder(c *gin.Context) {
	if err := h.Orders.MarkDelivered(c.Request.Context(), c.Param("orderID")); err != nil {
		utils.JSONError(c, orderErrorStatus(err), "could not mark order delivered", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.OrderStatusDelivered})
}

// MarkOrderPaid records payment receipt for an order.
func (h *AdminHandler) MarkOrderPaid(c *gin.Context) {
	if err := h.Orders.MarkPaid(c.Request.Context(), c.Param("orderID")); err != nil {
		utils.JSONError(c, orderErrorStatus(err), "could not mark order paid", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.PaymentStatusPaid})
}

type createBlockInput struct {
	Date      string `json:"date" binding:"required"`
	WholeDay  bool   `json:"wholeDay"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason" binding:"required"`
}

// CreateBlock adds a blocked interval for a date.
func (h *AdminHandler) CreateBlock(c *gin.Context) {
	var input createBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}
	if !input.WholeDay && (input.StartTime == "" || input.EndTime == "") {
		utils.JSONError(c, http.StatusBadRequest, "invalid interval", "partial blocks need startTime and endTime")
		return
	}

	block := &models.BlockedInterval{
		Date:      input.Date,
		WholeDay:  input.WholeDay,
		StartTime: availability.NormalizeTime(input.StartTime),
		EndTime:   availability.NormalizeTime(input.EndTime),
		Reason:    input.Reason,
	}
	if block.WholeDay {
		block.StartTime, block.EndTime = "", ""
	}
	if err := h.Blocked.Create(c.Request.Context(), block); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not create block", err.Error())
		return
	}
	if h.Calendar != nil {
		h.Calendar.Invalidate(c.Request.Context(), block.Date)
	}
	c.JSON(http.StatusCreated, block)
}

// ListBlocks lists blocked intervals from ?from= (default today).
func (h *AdminHandler) ListBlocks(c *gin.Context) {
	from := c.DefaultQuery("from", time.Now().Format("2006-01-02"))
	blocks, err := h.Blocked.ListFromDate(c.Request.Context(), from)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list blocks", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// DeleteBlock removes a blocked interval.
func (h *AdminHandler) DeleteBlock(c *gin.Context) {
	if err := h.Blocked.Delete(c.Request.Context(), c.Param("blockID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "could not delete block", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("blockID")})
}
