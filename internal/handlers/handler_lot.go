package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
	"github.com/herdstack/herd_management_app/internal/middleware"
)

// lotHandler handles HTTP requests related to lots.
type lotHandler struct {
	lotService portssvc.LotSvcFacade
}

func newLotHandler(lot portssvc.LotSvcFacade) *lotHandler {
	return &lotHandler{lotService: lot}
}

// registerLotRoutes registers routes related to lots.
func registerLotRoutes(rg *gin.RouterGroup, lot portssvc.LotSvcFacade) {
	h := newLotHandler(lot)

	lots := rg.Group("/lots")
	{
		lots.POST("", h.createLot)
		lots.GET("", h.listLots)
		lots.GET("/:id", h.getLot)
		lots.GET("/:id/animals", h.listLotAnimals)
		lots.PUT("/:id/pasture", h.reassignPasture)
		lots.POST("/:id/animals", h.assignAnimals)
	}
}

func (h *lotHandler) createLot(c *gin.Context) {
	var req dto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	lot, err := h.lotService.CreateLot(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lot)
}

func (h *lotHandler) listLots(c *gin.Context) {
	lots, err := h.lotService.ListLots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lots)
}

func (h *lotHandler) getLot(c *gin.Context) {
	lot, err := h.lotService.GetLotByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lot)
}

func (h *lotHandler) listLotAnimals(c *gin.Context) {
	animals, err := h.lotService.ListLotAnimals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animals)
}

func (h *lotHandler) reassignPasture(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReassignLotPastureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reassignPasture", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	moved, err := h.lotService.ReassignLotPasture(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkMoveResponse{
		MovedCount: moved,
		Message:    fmt.Sprintf("%d animals moved", moved),
	})
}

func (h *lotHandler) assignAnimals(c *gin.Context) {
	var req dto.AssignAnimalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	assigned, err := h.lotService.AssignAnimalsToLot(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkMoveResponse{
		MovedCount: assigned,
		Message:    fmt.Sprintf("%d animals assigned", assigned),
	})
}
