package usecase

import (
	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/presenter"
)

// forEachID applies fn to every ID in order and collects the outcomes.
func forEachID(ids []int, fn func(id int) domain.Outcome) domain.Outcomes {
	outs := make(domain.Outcomes, 0, len(ids))
	for _, id := range ids {
		outs = append(outs, fn(id))
	}
	return outs
}

// logOutcomes writes one log entry per outcome to the task's log.
func logOutcomes(logger domain.Logger, category string, outs domain.Outcomes) {
	for _, o := range outs {
		if o.Err != nil {
			logger.Warn(o.TaskID, category, presenter.Message(o))
			continue
		}
		logger.Info(o.TaskID, category, presenter.Message(o))
	}
}
