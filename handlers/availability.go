package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bakehouse/services/availability"
	"bakehouse/services/calendar"
	"bakehouse/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves slot and calendar queries for the date picker.
type AvailabilityHandler struct {
	Eval     *availability.Evaluator
	Calendar *calendar.Adapter
}

func NewAvailabilityHandler(eval *availability.Evaluator, cal *calendar.Adapter) *AvailabilityHandler {
	return &AvailabilityHandler{Eval: eval, Calendar: cal}
}

// GetTimeSlots returns the open pickup times for ?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected date=YYYY-MM-DD")
		return
	}

	slots := h.Eval.AvailableTimeSlots(c.Request.Context(), date)
	verdict := h.Eval.DateVerdict(c.Request.Context(), date)
	c.JSON(http.StatusOK, gin.H{
		"date":    date,
		"slots":   slots,
		"verdict": verdict,
	})
}

// CheckDateTime answers whether ?date= (and optional ?time=) is blocked by
// an operator interval.
func (h *AvailabilityHandler) CheckDateTime(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected date=YYYY-MM-DD")
		return
	}

	verdict := h.Eval.IsDateTimeBlocked(c.Request.Context(), date, c.Query("time"))
	c.JSON(http.StatusOK, verdict)
}

// GetCalendar returns the month grid for ?year=&month=, with an optional
// ?selected= date highlighted.
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2200 {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", "expected year=YYYY")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", "expected month=1..12")
		return
	}

	days := h.Calendar.MonthGrid(c.Request.Context(), year, time.Month(month), c.Query("selected"))
	c.JSON(http.StatusOK, gin.H{"days": days})
}
