package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
	"github.com/herdstack/herd_management_app/internal/middleware"
)

// animalHandler handles HTTP requests related to animals.
type animalHandler struct {
	animalService    portssvc.AnimalSvcFacade
	movementService  portssvc.MovementSvcFacade
	costService      portssvc.CostSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newAnimalHandler(animal portssvc.AnimalSvcFacade, movement portssvc.MovementSvcFacade, cost portssvc.CostSvcFacade, reporting portssvc.ReportingSvcFacade) *animalHandler {
	return &animalHandler{
		animalService:    animal,
		movementService:  movement,
		costService:      cost,
		reportingService: reporting,
	}
}

// registerAnimalRoutes registers routes related to animals.
func registerAnimalRoutes(rg *gin.RouterGroup, animal portssvc.AnimalSvcFacade, movement portssvc.MovementSvcFacade, cost portssvc.CostSvcFacade, reporting portssvc.ReportingSvcFacade) {
	h := newAnimalHandler(animal, movement, cost, reporting)

	animals := rg.Group("/animals")
	{
		animals.POST("", h.createAnimal)
		animals.GET("", h.listAnimals)
		animals.GET("/:id", h.getAnimal)
		animals.PUT("/:id", h.updateAnimal)
		animals.GET("/:id/current-pasture", h.getCurrentPasture)
		animals.GET("/:id/movements", h.listMovements)
		animals.POST("/:id/dispositions", h.createDisposition)
		animals.POST("/:id/weighings", h.createWeighing)
		animals.GET("/:id/weighings", h.listWeighings)
		animals.POST("/:id/treatments", h.createTreatment)
		animals.GET("/:id/treatments", h.listTreatments)
		animals.GET("/:id/allocations", h.listAllocations)
		animals.GET("/:id/performance", h.getPerformance)
	}
}

func (h *animalHandler) createAnimal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAnimal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	animal, err := h.animalService.RegisterAnimal(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, animal)
}

func (h *animalHandler) listAnimals(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	animals, err := h.animalService.ListAnimals(c.Request.Context(), activeOnly, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animals)
}

// getAnimal resolves the path parameter as an animal ID first, falling back
// to an ear tag lookup.
func (h *animalHandler) getAnimal(c *gin.Context) {
	id := c.Param("id")
	animal, err := h.animalService.GetAnimalByID(c.Request.Context(), id)
	if err != nil {
		animal, err = h.animalService.GetAnimalByTag(c.Request.Context(), id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

func (h *animalHandler) updateAnimal(c *gin.Context) {
	var req dto.UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	animal, err := h.animalService.UpdateAnimal(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

func (h *animalHandler) getCurrentPasture(c *gin.Context) {
	pasture, err := h.movementService.CurrentPasture(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if pasture == nil {
		c.JSON(http.StatusOK, gin.H{"pasture": nil})
		return
	}
	c.JSON(http.StatusOK, pasture)
}

func (h *animalHandler) listMovements(c *gin.Context) {
	movements, err := h.movementService.ListMovementsByAnimal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

func (h *animalHandler) createDisposition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDispositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDisposition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	disposition, err := h.animalService.RecordDisposition(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, disposition)
}

func (h *animalHandler) createWeighing(c *gin.Context) {
	var req dto.CreateWeighingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	weighing, err := h.animalService.RecordWeighing(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, weighing)
}

func (h *animalHandler) listWeighings(c *gin.Context) {
	weighings, err := h.animalService.ListWeighings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, weighings)
}

func (h *animalHandler) createTreatment(c *gin.Context) {
	var req dto.CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	treatment, err := h.animalService.RecordTreatment(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, treatment)
}

func (h *animalHandler) listTreatments(c *gin.Context) {
	treatments, err := h.animalService.ListTreatments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func (h *animalHandler) listAllocations(c *gin.Context) {
	details, err := h.costService.ListAllocationsByAnimal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *animalHandler) getPerformance(c *gin.Context) {
	sinceDays, _ := strconv.Atoi(c.DefaultQuery("sinceDays", "0"))
	perf, err := h.reportingService.AnimalPerformance(c.Request.Context(), c.Param("id"), sinceDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, perf)
}
