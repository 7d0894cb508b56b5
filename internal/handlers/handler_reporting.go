package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
)

// reportingHandler handles HTTP requests for the read-only reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reporting portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reporting}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reporting portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reporting)

	reports := rg.Group("/reports")
	{
		reports.GET("/costs-by-category", h.getCostsByCategory)
		reports.GET("/due-treatments", h.getDueTreatments)
	}
}

// getDueTreatments lists treatments whose follow-up falls on or before the
// "by" date. Defaults to today.
func (h *reportingHandler) getDueTreatments(c *gin.Context) {
	by := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := c.Query("by"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid by date, expected YYYY-MM-DD"})
			return
		}
		by = parsed
	}

	treatments, err := h.reportingService.DueTreatments(c.Request.Context(), by)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func (h *reportingHandler) getCostsByCategory(c *gin.Context) {
	from, err := time.Parse(time.DateOnly, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(time.DateOnly, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
		return
	}

	totals, err := h.reportingService.CostByCategory(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
