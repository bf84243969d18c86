package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and editing.
var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("grid: configuration error")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrTooSmall indicates rows or cols below MinSize.
	ErrTooSmall = errors.New("grid: grid dimensions below minimum")
	// ErrNoStart indicates no start cell was marked.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrNoFinish indicates no finish cell was marked.
	ErrNoFinish = errors.New("grid: no finish cell")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateFinish indicates more than one finish cell.
	ErrDuplicateFinish = errors.New("grid: more than one finish cell")
	// ErrSameEndpoints indicates a single cell marked as both start and finish.
	ErrSameEndpoints = errors.New("grid: start and finish must be distinct")
	// ErrEndpointWall indicates the start or finish cell is a wall.
	ErrEndpointWall = errors.New("grid: start or finish cell is a wall")
	// ErrUnknownSymbol indicates an unrecognised ASCII symbol in Parse.
	ErrUnknownSymbol = errors.New("grid: unknown cell symbol")

	// ErrInvalidEdit indicates an edit that is out of bounds or would wall an endpoint.
	ErrInvalidEdit = errors.New("grid: invalid edit")
)

// ConfigurationError reports a malformed grid. It always matches
// ErrConfiguration via errors.Is, and unwraps to the specific sentinel.
type ConfigurationError struct {
	Op       string // constructor that failed, e.g. "New" or "Parse"
	Row, Col int    // offending cell, or -1 when not cell-specific
	Err      error  // specific sentinel
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("grid: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("grid: %s: cell (%d,%d): %v", e.Op, e.Row, e.Col, e.Err)
}

// Unwrap returns the specific sentinel.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// configErr builds a *ConfigurationError without a cell position.
func configErr(op string, err error) error {
	return &ConfigurationError{Op: op, Row: -1, Col: -1, Err: err}
}

// cellErr builds a *ConfigurationError tied to one cell.
func cellErr(op string, r, c int, err error) error {
	return &ConfigurationError{Op: op, Row: r, Col: c, Err: err}
}
