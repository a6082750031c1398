// Package shared holds helpers used by several use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/pt/internal/domain"
)

// LoadState reads the state and wraps failures with domain.ErrStorageUnavailable.
func LoadState(repo domain.StateRepository) (*domain.State, error) {
	s, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: load state: %w", domain.ErrStorageUnavailable, err)
	}
	if s == nil {
		s = domain.NewState()
	}
	return s, nil
}

// MutateState runs the load → mutate → save sequence of one command.
//
//	state, outs, err := MutateState(repo, func(s *domain.State) domain.Outcomes { ... })
//
// The state is saved only if some outcome changed it. When every ID in a batch
// failed, or loading failed, nothing is written.
func MutateState(repo domain.StateRepository, fn func(*domain.State) domain.Outcomes) (*domain.State, domain.Outcomes, error) {
	s, err := LoadState(repo)
	if err != nil {
		return nil, nil, err
	}

	outs := fn(s)
	if !outs.Changed() {
		return s, outs, nil
	}

	if err := repo.Save(s); err != nil {
		return nil, outs, fmt.Errorf("%w: save state: %w", domain.ErrStorageUnavailable, err)
	}
	return s, outs, nil
}
