package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	"github.com/herdstack/herd_management_app/internal/models"
	"github.com/herdstack/herd_management_app/internal/utils/mapping"
)

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(pool DBPool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

const taskColumns = `task_id, title, due_date, kind, animal_id, pasture_id, notes, done,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanTask(row pgx.Row) (*models.Task, error) {
	var t models.Task
	err := row.Scan(
		&t.TaskID,
		&t.Title,
		&t.DueDate,
		&t.Kind,
		&t.AnimalID,
		&t.PastureID,
		&t.Notes,
		&t.Done,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTask persists a new task.
func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	m := mapping.ToModelTask(task)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO tasks (
			task_id, title, due_date, kind, animal_id, pasture_id, notes, done,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.TaskID, m.Title, m.DueDate, m.Kind, m.AnimalID, m.PastureID, m.Notes, m.Done,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save task "+m.TaskID, err)
	}
	return nil
}

// FindTaskByID retrieves a task by its ID.
func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1;`
	t, err := scanTask(r.Pool.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find task by ID "+taskID, err)
	}
	result := mapping.ToDomainTask(*t)
	return &result, nil
}

// ListTasks retrieves tasks ordered by due date.
func (r *PgxTaskRepository) ListTasks(ctx context.Context, includeDone bool) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeDone {
		query += ` WHERE done = FALSE`
	}
	query += ` ORDER BY due_date, created_at;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tasks", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan task row", err)
		}
		tasks = append(tasks, mapping.ToDomainTask(*t))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating task rows", err)
	}

	return tasks, nil
}

// MarkTaskDone flags a task as completed.
func (r *PgxTaskRepository) MarkTaskDone(ctx context.Context, taskID, actorID string, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE tasks SET done = TRUE, last_updated_at = $2, last_updated_by = $3 WHERE task_id = $1;`,
		taskID, now, actorID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark task "+taskID+" done", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("task " + taskID + " not found")
	}
	return nil
}

// CountDueTasks returns how many pending tasks fall due on asOf and how many
// were already due before it.
func (r *PgxTaskRepository) CountDueTasks(ctx context.Context, asOf time.Time) (int, int, error) {
	var due, overdue int
	err := r.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE due_date = $1),
			COUNT(*) FILTER (WHERE due_date < $1)
		FROM tasks WHERE done = FALSE;
	`, asOf).Scan(&due, &overdue)
	if err != nil {
		return 0, 0, apperrors.NewAppError(500, "failed to count due tasks", err)
	}
	return due, overdue, nil
}
