package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
	"github.com/herdstack/herd_management_app/internal/middleware"
)

// costHandler handles HTTP requests related to costs and their allocation.
type costHandler struct {
	costService portssvc.CostSvcFacade
}

func newCostHandler(cost portssvc.CostSvcFacade) *costHandler {
	return &costHandler{costService: cost}
}

// registerCostRoutes registers routes related to costs.
func registerCostRoutes(rg *gin.RouterGroup, cost portssvc.CostSvcFacade) {
	h := newCostHandler(cost)

	costs := rg.Group("/costs")
	{
		costs.POST("", h.createCostRecord)
		costs.GET("", h.listCostRecords)
		costs.GET("/:id", h.getCostRecord)
		costs.PUT("/:id", h.updateCostRecord)
		costs.GET("/:id/allocations", h.listAllocations)
	}

	rg.POST("/expenses", h.recordExpense)
	rg.GET("/cost-categories", h.listCategories)
}

func toCostRecordResponse(record *domain.CostRecord, allocated int) dto.CostRecordResponse {
	return dto.CostRecordResponse{
		CostID:         record.CostID,
		CategoryID:     record.CategoryID,
		CostDate:       record.CostDate,
		Amount:         record.Amount,
		Description:    record.Description,
		AnimalID:       record.AnimalID,
		PastureID:      record.PastureID,
		Quantity:       record.Quantity,
		AllocatedCount: allocated,
	}
}

func (h *costHandler) createCostRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCostRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCostRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	record, allocated, err := h.costService.CreateCostRecord(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCostRecordResponse(record, allocated))
}

func (h *costHandler) recordExpense(c *gin.Context) {
	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	record, err := h.costService.RecordExpense(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *costHandler) listCostRecords(c *gin.Context) {
	from, err := time.Parse(time.DateOnly, c.DefaultQuery("from", "1970-01-01"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(time.DateOnly, c.DefaultQuery("to", "9999-12-31"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.costService.ListCostRecords(c.Request.Context(), from, to, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *costHandler) getCostRecord(c *gin.Context) {
	record, err := h.costService.GetCostRecordByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *costHandler) updateCostRecord(c *gin.Context) {
	var req dto.UpdateCostRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	record, err := h.costService.UpdateCostRecord(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *costHandler) listAllocations(c *gin.Context) {
	details, err := h.costService.ListAllocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *costHandler) listCategories(c *gin.Context) {
	categories, err := h.costService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
