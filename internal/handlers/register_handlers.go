package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerAnimalRoutes(v1, services.Animal, services.Movement, services.Cost, services.Reporting)
	registerPastureRoutes(v1, services.Pasture, services.Movement, services.Reporting)
	registerMovementRoutes(v1, services.Movement)
	registerLotRoutes(v1, services.Lot)
	registerCostRoutes(v1, services.Cost)
	registerTaskRoutes(v1, services.Task)
	registerReportingRoutes(v1, services.Reporting)
}

// respondError translates service errors into HTTP responses: validation
// failures are 400, missing entities 404, uniqueness conflicts 409 and
// everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
