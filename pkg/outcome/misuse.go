package outcome

import (
	"errors"
	"fmt"
)

// ErrMisuse matches every *MisuseError.
var ErrMisuse = errors.New("outcome: accessor does not match the outcome")

// MisuseError is the panic value raised when an accessor is called on the
// wrong side of an Outcome. It is a programming error, never a domain failure.
type MisuseError struct {
	Accessor string
	State    string
}

func misuse(accessor string, s state) *MisuseError {
	return &MisuseError{Accessor: accessor, State: s.String()}
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("outcome: %s called on %s", e.Accessor, e.State)
}

func (e *MisuseError) Unwrap() error {
	return ErrMisuse
}

// IsMisuse reports whether a value obtained from recover is a misuse panic.
func IsMisuse(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return errors.Is(err, ErrMisuse)
}
