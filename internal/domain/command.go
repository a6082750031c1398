package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Args    []string
}

// NewCommand creates an ExecCommand.
func NewCommand(program string, args []string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
	}
}
