package checkpoints

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCheckpointTable means the compiled-in (or caller-supplied)
	// checkpoint table failed validation at construction.
	ErrBadCheckpointTable = errors.New("invalid checkpoint table")

	// ErrEmptyCheckpointTable means an operation that needs at least one
	// checkpoint ran against an empty table. Production tables are never
	// empty; hitting this is a deployment bug, not a runtime condition.
	ErrEmptyCheckpointTable = errors.New("empty checkpoint table")
)

func errBadTable(reason string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadCheckpointTable, fmt.Sprintf(reason, args...))
}

func errEmptyTable(net Network) error {
	return fmt.Errorf("%w: %s", ErrEmptyCheckpointTable, net)
}
