// Package executor runs external programs such as the desktop notifier and the alarm player.
package executor

import (
	"context"
	"os/exec"

	"github.com/runoshun/pt/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns its combined output.
// The process is killed when ctx is cancelled.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	// #nosec G204 - program and args come from config or built-in defaults
	return exec.CommandContext(ctx, cmd.Program, cmd.Args...).CombinedOutput()
}

