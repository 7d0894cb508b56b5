package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
	"github.com/herdstack/herd_management_app/internal/middleware"
)

// pastureHandler handles HTTP requests related to pastures.
type pastureHandler struct {
	pastureService   portssvc.PastureSvcFacade
	movementService  portssvc.MovementSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newPastureHandler(pasture portssvc.PastureSvcFacade, movement portssvc.MovementSvcFacade, reporting portssvc.ReportingSvcFacade) *pastureHandler {
	return &pastureHandler{
		pastureService:   pasture,
		movementService:  movement,
		reportingService: reporting,
	}
}

// registerPastureRoutes registers routes related to pastures.
func registerPastureRoutes(rg *gin.RouterGroup, pasture portssvc.PastureSvcFacade, movement portssvc.MovementSvcFacade, reporting portssvc.ReportingSvcFacade) {
	h := newPastureHandler(pasture, movement, reporting)

	pastures := rg.Group("/pastures")
	{
		pastures.POST("", h.createPasture)
		pastures.GET("", h.listPastures)
		pastures.GET("/:id", h.getPasture)
		pastures.PUT("/:id", h.updatePasture)
		pastures.DELETE("/:id", h.deletePasture)
		pastures.GET("/:id/occupancy", h.getOccupancy)
		pastures.GET("/:id/summary", h.getSummary)
	}
}

func (h *pastureHandler) createPasture(c *gin.Context) {
	var req dto.CreatePastureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	pasture, err := h.pastureService.CreatePasture(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pasture)
}

func (h *pastureHandler) listPastures(c *gin.Context) {
	pastures, err := h.pastureService.ListPastures(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pastures)
}

func (h *pastureHandler) getPasture(c *gin.Context) {
	pasture, err := h.pastureService.GetPastureByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pasture)
}

func (h *pastureHandler) updatePasture(c *gin.Context) {
	var req dto.UpdatePastureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	pasture, err := h.pastureService.UpdatePasture(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pasture)
}

func (h *pastureHandler) deletePasture(c *gin.Context) {
	if err := h.pastureService.DeletePasture(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getOccupancy answers the point-in-time query (?date=) or the range query
// (?from=&to=). With no parameters it reports occupancy today.
func (h *pastureHandler) getOccupancy(c *gin.Context) {
	pastureID := c.Param("id")
	ctx := c.Request.Context()

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		from, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
		to, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return
		}
		animals, err := h.movementService.OccupancyBetween(ctx, pastureID, from, to)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, animals)
		return
	}

	asOf := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	animals, err := h.movementService.OccupancyAt(ctx, pastureID, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animals)
}

func (h *pastureHandler) getSummary(c *gin.Context) {
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

	summary, err := h.reportingService.PastureSummary(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
