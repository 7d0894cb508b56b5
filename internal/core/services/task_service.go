package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// taskService provides management-task scheduling.
type taskService struct {
	BaseService
	taskRepo    portsrepo.TaskRepositoryFacade
	animalRepo  portsrepo.AnimalRepositoryFacade
	pastureRepo portsrepo.PastureRepositoryFacade
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade, animalRepo portsrepo.AnimalRepositoryFacade, pastureRepo portsrepo.PastureRepositoryFacade) portssvc.TaskSvcFacade {
	return &taskService{
		taskRepo:    taskRepo,
		animalRepo:  animalRepo,
		pastureRepo: pastureRepo,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

// CreateTask schedules a management task.
func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, actorID string) (*domain.Task, error) {
	if req.AnimalID != nil {
		if _, err := s.animalRepo.FindAnimalByID(ctx, *req.AnimalID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("animal " + *req.AnimalID + " not found")
			}
			return nil, err
		}
	}
	if req.PastureID != nil {
		if _, err := s.pastureRepo.FindPastureByID(ctx, *req.PastureID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("pasture " + *req.PastureID + " not found")
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	task := domain.Task{
		TaskID:    uuid.New().String(),
		Title:     req.Title,
		DueDate:   req.DueDate,
		Kind:      domain.TaskKind(req.Kind),
		AnimalID:  req.AnimalID,
		PastureID: req.PastureID,
		Notes:     req.Notes,
		Done:      false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "failed to create task", slog.String("title", req.Title))
		return nil, err
	}

	s.LogInfo(ctx, "task created", slog.String("task_id", task.TaskID), slog.String("kind", req.Kind))
	return &task, nil
}

// ListTasks retrieves tasks ordered by due date.
func (s *taskService) ListTasks(ctx context.Context, includeDone bool) ([]domain.Task, error) {
	return s.taskRepo.ListTasks(ctx, includeDone)
}

// CompleteTask flags a task as done.
func (s *taskService) CompleteTask(ctx context.Context, taskID, actorID string) error {
	if err := s.taskRepo.MarkTaskDone(ctx, taskID, actorID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to complete task", slog.String("task_id", taskID))
		return err
	}
	s.LogInfo(ctx, "task completed", slog.String("task_id", taskID))
	return nil
}

// CountDue reports pending tasks due on asOf and overdue before it.
func (s *taskService) CountDue(ctx context.Context, asOf time.Time) (int, int, error) {
	return s.taskRepo.CountDueTasks(ctx, asOf)
}
