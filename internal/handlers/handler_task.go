package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
	"github.com/herdstack/herd_management_app/internal/middleware"
)

// taskHandler handles HTTP requests related to management tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(task portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: task}
}

// registerTaskRoutes registers routes related to tasks.
func registerTaskRoutes(rg *gin.RouterGroup, task portssvc.TaskSvcFacade) {
	h := newTaskHandler(task)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.PUT("/:id/done", h.completeTask)
	}
}

func (h *taskHandler) createTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	task, err := h.taskService.CreateTask(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *taskHandler) listTasks(c *gin.Context) {
	includeDone := c.Query("includeDone") == "true"
	tasks, err := h.taskService.ListTasks(c.Request.Context(), includeDone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *taskHandler) completeTask(c *gin.Context) {
	actorID := middleware.GetActorFromContext(c)
	if err := h.taskService.CompleteTask(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
