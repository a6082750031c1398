package tui

import (
	"time"

	"github.com/runoshun/pt/internal/domain"
)

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTick is sent once per second.
type MsgTick struct {
	Now time.Time
}

func (MsgTick) sealed() {}

// MsgTasksLoaded is sent when tasks are loaded from the store.
type MsgTasksLoaded struct {
	Now   time.Time
	Tasks []*domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgNotified is sent after an expiry check.
type MsgNotified struct {
	Delivered []domain.Alert
}

func (MsgNotified) sealed() {}

// MsgActionDone is sent when a key action has changed tasks.
type MsgActionDone struct {
	Err      error
	Messages []string
}

func (MsgActionDone) sealed() {}

// MsgError is sent when loading or notifying fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
