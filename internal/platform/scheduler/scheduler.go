// Package scheduler runs the periodic background jobs: currently a daily
// sweep that counts due and overdue management tasks and logs the result for
// the operators.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
)

// TaskSweeper owns the cron runner for the due-task sweep.
type TaskSweeper struct {
	cron    *cron.Cron
	taskSvc portssvc.TaskSvcFacade
	logger  *slog.Logger
}

// NewTaskSweeper builds a sweeper that runs on the given cron spec.
func NewTaskSweeper(taskSvc portssvc.TaskSvcFacade, logger *slog.Logger, spec string) (*TaskSweeper, error) {
	s := &TaskSweeper{
		cron:    cron.New(),
		taskSvc: taskSvc,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron runner in its own goroutine.
func (s *TaskSweeper) Start() {
	s.cron.Start()
	s.logger.Info("task sweeper started")
}

// Stop halts the cron runner and waits for a running sweep to finish.
func (s *TaskSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("task sweeper stopped")
}

func (s *TaskSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	due, overdue, err := s.taskSvc.CountDue(ctx, today)
	if err != nil {
		s.logger.Error("due-task sweep failed", slog.String("error", err.Error()))
		return
	}

	s.logger.Info("due-task sweep",
		slog.String("as_of", today.Format(time.DateOnly)),
		slog.Int("due_today", due),
		slog.Int("overdue", overdue))
}
