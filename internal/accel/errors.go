package accel

import (
	"errors"
	"fmt"
)

// ErrInvalidKeySpec indicates a key specification that cannot be bound.
var ErrInvalidKeySpec = errors.New("invalid key specification")

// ErrNilHandler indicates a shortcut registered without a handler.
var ErrNilHandler = errors.New("nil shortcut handler")

// InvalidKeySpecError describes why a key specification was rejected.
type InvalidKeySpecError struct {
	Spec   string // The specification as supplied
	Reason string // What is wrong with it
}

func (e *InvalidKeySpecError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidKeySpec, e.Spec, e.Reason)
}

// Is matches ErrInvalidKeySpec.
func (e *InvalidKeySpecError) Is(target error) bool {
	return target == ErrInvalidKeySpec
}
