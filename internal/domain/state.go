package domain

import (
	"slices"
	"time"
)

// State is the full persisted task list.
// Tasks are kept in ascending ID order; NextID is never lowered, so IDs are not reused.
type State struct {
	Tasks  []*Task `json:"tasks" yaml:"tasks"`
	NextID int     `json:"nextID" yaml:"next_id"`
}

// NewState creates an empty state.
func NewState() *State {
	return &State{NextID: 1}
}

// Normalize sorts tasks by ID and makes NextID larger than every ID in use.
// Stores call it after loading.
func (s *State) Normalize() {
	slices.SortFunc(s.Tasks, func(a, b *Task) int {
		return a.ID - b.ID
	})
	if s.NextID < 1 {
		s.NextID = 1
	}
	for _, t := range s.Tasks {
		if t.ID >= s.NextID {
			s.NextID = t.ID + 1
		}
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := &State{NextID: s.NextID, Tasks: make([]*Task, 0, len(s.Tasks))}
	for _, t := range s.Tasks {
		c.Tasks = append(c.Tasks, t.Clone())
	}
	return c
}

// Find returns the task with the given ID, or nil.
func (s *State) Find(id int) *Task {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// List returns the tasks whose archived flag matches, in ID order.
func (s *State) List(archived bool) []*Task {
	tasks := make([]*Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.Archived == archived {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Add appends a new task with the next sequential ID.
// The description is stored as given.
func (s *State) Add(description string, now time.Time) *Task {
	if s.NextID < 1 {
		s.NextID = 1
	}
	task := NewTask(s.NextID, description, now)
	s.NextID++
	s.Tasks = append(s.Tasks, task)
	return task
}

// Check marks a task as done. Checking a checked task is not an error.
func (s *State) Check(id int) Outcome {
	return s.update(id, EventChecked, func(t *Task) error {
		t.Checked = true
		return nil
	})
}

// Uncheck clears the done mark.
func (s *State) Uncheck(id int) Outcome {
	return s.update(id, EventUnchecked, func(t *Task) error {
		t.Checked = false
		return nil
	})
}

// Archive hides a task from the default listing.
func (s *State) Archive(id int) Outcome {
	return s.update(id, EventArchived, func(t *Task) error {
		t.Archived = true
		return nil
	})
}

// Unarchive brings an archived task back to the default listing.
func (s *State) Unarchive(id int) Outcome {
	return s.update(id, EventUnarchived, func(t *Task) error {
		t.Archived = false
		return nil
	})
}

// ArchiveChecked archives every checked task that is not archived yet.
func (s *State) ArchiveChecked() Outcomes {
	var outs Outcomes
	for _, t := range s.Tasks {
		if t.Checked && !t.Archived {
			t.Archived = true
			outs = append(outs, Outcome{TaskID: t.ID, Event: EventArchived})
		}
	}
	return outs
}

// StartPomodoro starts a pomodoro on the task at now.
// A running pomodoro is handled according to the policy and never stacked.
func (s *State) StartPomodoro(id int, now time.Time, policy RunningPolicy) Outcome {
	t := s.Find(id)
	if t == nil {
		return failed(id, ErrTaskNotFound)
	}
	if t.IsPomodoroActive() {
		switch policy {
		case RunningRestart:
			t.PomodoroStarted = timePtr(now)
			return Outcome{TaskID: id, Event: EventPomodoroRestarted}
		case RunningReject:
			return failed(id, ErrPomodoroActive)
		default:
			return Outcome{TaskID: id, Event: EventPomodoroAlreadyActive}
		}
	}
	t.PomodoroStarted = timePtr(now)
	return Outcome{TaskID: id, Event: EventPomodoroStarted}
}

// FinishPomodoro stops the running pomodoro and credits its elapsed time.
func (s *State) FinishPomodoro(id int, now time.Time, settings PomodoroSettings) Outcome {
	t := s.Find(id)
	if t == nil {
		return failed(id, ErrTaskNotFound)
	}
	if !t.IsPomodoroActive() {
		return failed(id, ErrNoActivePomodoro)
	}
	credit := settings.Credit(t.Elapsed(now))
	t.AccumulatedSeconds += int64(credit / time.Second)
	t.PomodoroStarted = nil
	return Outcome{TaskID: id, Event: EventPomodoroFinished, Amount: credit}
}

// Track credits whole minutes to a task without a pomodoro.
func (s *State) Track(id int, minutes int) Outcome {
	if minutes <= 0 {
		return failed(id, ErrInvalidMinutes)
	}
	amount := time.Duration(minutes) * time.Minute
	out := s.update(id, EventTracked, func(t *Task) error {
		t.AccumulatedSeconds += int64(amount / time.Second)
		return nil
	})
	if out.Err == nil {
		out.Amount = amount
	}
	return out
}

// Expired returns the tasks whose pomodoro has run out, in ID order.
func (s *State) Expired(now time.Time, duration time.Duration) []*Task {
	var tasks []*Task
	for _, t := range s.Tasks {
		if t.PomodoroExpired(now, duration) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (s *State) update(id int, event Event, fn func(*Task) error) Outcome {
	t := s.Find(id)
	if t == nil {
		return failed(id, ErrTaskNotFound)
	}
	if err := fn(t); err != nil {
		return failed(id, err)
	}
	return Outcome{TaskID: id, Event: event}
}

func failed(id int, err error) Outcome {
	return Outcome{TaskID: id, Err: NewTaskError(id, err)}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
