package services

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// TaskSvcFacade exposes management-task scheduling.
type TaskSvcFacade interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest, actorID string) (*domain.Task, error)
	ListTasks(ctx context.Context, includeDone bool) ([]domain.Task, error)
	CompleteTask(ctx context.Context, taskID, actorID string) error

	// CountDue reports pending tasks due on asOf and overdue before it; the
	// scheduler calls this on its daily sweep.
	CountDue(ctx context.Context, asOf time.Time) (due int, overdue int, err error)
}
