package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is matched by every ValidationError via errors.Is.
var ErrInvalidPattern = errors.New("invalid pattern")

// Validation error codes.
const (
	CodeEmpty       = "EMPTY_PATTERN"
	CodeRagged      = "RAGGED_ROWS"
	CodeInvalidCell = "INVALID_CELL"
	CodeNoDigCells  = "NO_DIG_CELLS"
)

// ValidationError contains details about a malformed pattern.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrInvalidPattern) true for any validation error.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// Validate checks that rows form a usable pattern:
//   - at least one non-empty row
//   - every row as long as the first
//   - only dig and no-dig markers
//   - at least one dig cell
func Validate(rows []string) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ValidationError{
			Code:    CodeEmpty,
			Message: "pattern has no cells",
		}
	}

	width := len(rows[0])
	digs := 0
	for i, r := range rows {
		if len(r) != width {
			return ValidationError{
				Code:    CodeRagged,
				Message: fmt.Sprintf("row %d has length %d, want %d", i, len(r), width),
			}
		}
		for j := 0; j < len(r); j++ {
			switch r[j] {
			case DigMarker:
				digs++
			case NoDigMarker:
			default:
				return ValidationError{
					Code:    CodeInvalidCell,
					Message: fmt.Sprintf("row %d col %d: unexpected %q", i, j, r[j]),
				}
			}
		}
	}

	if digs == 0 {
		return ValidationError{
			Code:    CodeNoDigCells,
			Message: "pattern contains no dig cells",
		}
	}

	return nil
}
