package usecase

import (
	"context"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Archived bool // List archived tasks instead of active ones
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Now   time.Time      // Time the listing was taken at
	Tasks []*domain.Task // Tasks in ascending ID order
}

// ListTasks is the use case for listing tasks. It never writes.
type ListTasks struct {
	repo  domain.StateRepository
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(repo domain.StateRepository, clock domain.Clock) *ListTasks {
	return &ListTasks{
		repo:  repo,
		clock: clock,
	}
}

// Execute lists the tasks matching the input.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	s, err := shared.LoadState(uc.repo)
	if err != nil {
		return nil, err
	}
	return &ListTasksOutput{
		Now:   uc.clock.Now(),
		Tasks: s.List(in.Archived),
	}, nil
}
