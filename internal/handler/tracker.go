package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"macrolog/internal/logger"
	"macrolog/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackerHandler serves the composite daily and weekly reads plus the
// spreadsheet export.
type TrackerHandler struct {
	tracker *service.Tracker
}

func NewTrackerHandler(tracker *service.Tracker) *TrackerHandler {
	return &TrackerHandler{tracker: tracker}
}

// GET /api/users/:id/daily?date=YYYY-MM-DD (defaults to today)
func (h *TrackerHandler) Daily(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	data, err := h.tracker.DailyData(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GET /api/users/:id/weekly?endDate=YYYY-MM-DD (defaults to today)
func (h *TrackerHandler) Weekly(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	endDate := c.Query("endDate")
	if endDate == "" {
		endDate = time.Now().Format("2006-01-02")
	}
	data, err := h.tracker.WeeklyData(c.Request.Context(), userID, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GET /api/users/:id/export?date=YYYY-MM-DD
func (h *TrackerHandler) Export(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	wb, err := h.tracker.ExportWorkbook(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("nutrition-%s.xlsx", date)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := wb.Write(c.Writer); err != nil {
		logger.Error("export write failed", "user", userID, "date", date, "err", err)
	}
}
