package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/pt/internal/domain"
)

// invalidIDError reports an argument that is not a task ID.
type invalidIDError struct {
	arg string
}

func (e *invalidIDError) Error() string {
	return fmt.Sprintf("%v: %s", domain.ErrInvalidTaskID, e.arg)
}

func (e *invalidIDError) Unwrap() error {
	return domain.ErrInvalidTaskID
}

// parseTaskID parses one task ID argument.
// IDs are positive integers; leading zeros as printed in listings are accepted.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, &invalidIDError{arg: arg}
	}
	return id, nil
}

// parseTaskIDs parses every argument as a task ID. The first bad argument
// aborts the whole batch.
func parseTaskIDs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, domain.ErrNoTaskID
	}
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
