package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/presenter"
	"github.com/runoshun/pt/internal/usecase"
)

// ErrReported is returned after a failure has already been printed.
// main exits non-zero without printing anything else.
var ErrReported = errors.New("error already reported")

// printer writes command output. Results go to out, failures to errOut.
type printer struct {
	out       io.Writer
	errOut    io.Writer
	presenter *presenter.Presenter
}

func (p *printer) println(line string) {
	_, _ = fmt.Fprintln(p.out, line)
}

func (p *printer) list(tasks []*domain.Task, now time.Time) {
	for _, line := range p.presenter.Lines(tasks, now) {
		p.println(line)
	}
}

// mutation prints one message per outcome, then the active task list.
// Returns ErrReported if any task failed.
func (p *printer) mutation(out *usecase.MutationOutput) error {
	for _, o := range out.Outcomes {
		w := p.out
		if o.Failed() {
			w = p.errOut
		}
		_, _ = fmt.Fprintln(w, presenter.Message(o))
	}
	p.list(out.State.List(false), out.Now)
	if out.Err() != nil {
		return ErrReported
	}
	return nil
}

// fail prints err as a user message when it has one and returns ErrReported.
// Errors without a user message are returned unchanged for main to print.
func (p *printer) fail(err error) error {
	msg, ok := userMessage(err)
	if !ok {
		return err
	}
	_, _ = fmt.Fprintln(p.errOut, msg)
	return ErrReported
}

func userMessage(err error) (string, bool) {
	var te *domain.TaskError
	var ie *invalidIDError
	switch {
	case errors.As(err, &te):
		return presenter.ErrorMessage(te.ID, te.Err), true
	case errors.As(err, &ie):
		return fmt.Sprintf("Invalid task ID %s.", ie.arg), true
	case errors.Is(err, domain.ErrNoTaskID):
		return "No task ID specified.", true
	default:
		return "", false
	}
}
