// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// MutationOutput is returned by every use case that changes tasks.
// Fields are ordered to minimize memory padding.
type MutationOutput struct {
	Now      time.Time       // Time the command ran at (used for rendering)
	State    *domain.State   // State after the mutation
	Outcomes domain.Outcomes // One outcome per requested task, in request order
}

// Err joins the per-task failures. Returns nil if every task succeeded.
func (o *MutationOutput) Err() error {
	return o.Outcomes.Err()
}

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Description string // Task description (required)
}

// AddTask is the use case for adding a task.
type AddTask struct {
	repo   domain.StateRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(repo domain.StateRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Execute appends a task with the next sequential ID.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*MutationOutput, error) {
	now := uc.clock.Now()

	var task *domain.Task
	s, outs, err := shared.MutateState(uc.repo, func(s *domain.State) domain.Outcomes {
		task = s.Add(in.Description, now)
		return domain.Outcomes{{TaskID: task.ID, Event: domain.EventAdded}}
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info(task.ID, "task", fmt.Sprintf("added: %q", task.Description))

	return &MutationOutput{Now: now, State: s, Outcomes: outs}, nil
}
