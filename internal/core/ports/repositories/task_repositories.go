package repositories

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
)

// TaskRepositoryFacade defines persistence for management tasks.
type TaskRepositoryFacade interface {
	SaveTask(ctx context.Context, task domain.Task) error
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// ListTasks retrieves tasks ordered by due date; pending only unless
	// includeDone is set.
	ListTasks(ctx context.Context, includeDone bool) ([]domain.Task, error)

	MarkTaskDone(ctx context.Context, taskID, actorID string, now time.Time) error

	// CountDueTasks returns how many pending tasks are due on asOf and how
	// many are overdue before it.
	CountDueTasks(ctx context.Context, asOf time.Time) (due int, overdue int, err error)
}
