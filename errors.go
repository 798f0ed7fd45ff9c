package datautil

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidTransform is matched by every [*InvalidTransformError].
var ErrInvalidTransform = errors.New("invalid transform")

// ValidationErrors is a map of keys (op or element indexes, field names) to
// their errors. It is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

// InvalidTransformError reports ops that cannot be applied to a string,
// keyed by their position in the op list.
type InvalidTransformError struct {
	Errors ValidationErrors
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidTransform, e.Errors)
}

func (e *InvalidTransformError) Is(target error) bool {
	return target == ErrInvalidTransform
}

func (e *InvalidTransformError) Unwrap() error {
	return e.Errors
}

// TransformError reports an op that failed on one value of a batch.
type TransformError struct {
	Index int // position of the value in the input
	Op    int // position of the op in the pipeline
	Value string
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("value %d (%q): op %d: %v", e.Index, e.Value, e.Op, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
