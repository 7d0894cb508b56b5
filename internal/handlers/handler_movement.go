package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
	"github.com/herdstack/herd_management_app/internal/middleware"
)

// movementHandler handles HTTP requests against the movement ledger.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

func newMovementHandler(movement portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementService: movement}
}

// registerMovementRoutes registers routes related to movements.
func registerMovementRoutes(rg *gin.RouterGroup, movement portssvc.MovementSvcFacade) {
	h := newMovementHandler(movement)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createMovement)
		movements.PUT("/:id", h.updateMovement)
		movements.DELETE("/:id", h.deleteMovement)
	}
}

func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	movement, err := h.movementService.RecordMovement(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

func (h *movementHandler) updateMovement(c *gin.Context) {
	var req dto.UpdateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	movement, err := h.movementService.UpdateMovement(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movement)
}

func (h *movementHandler) deleteMovement(c *gin.Context) {
	if err := h.movementService.DeleteMovement(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
