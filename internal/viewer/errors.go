package viewer

import (
	"errors"
	"fmt"
)

// Recoverable failures. None of them stops the viewer; stale results are not errors at all and
// are dropped before they could become one.
var (
	ErrPartLoadFailed        = errors.New("part load failed")
	ErrDimensionsFetchFailed = errors.New("dimensions fetch failed")
	ErrDimensionsParseFailed = errors.New("dimensions parse failed")
)

// PartError reports one mesh that could not be opened or decoded for a size variant.
type PartError struct {
	Part    string
	Variant string
	Err     error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("size %s: part %s: %v", e.Variant, e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

// Is makes every PartError match ErrPartLoadFailed.
func (e *PartError) Is(target error) bool {
	return target == ErrPartLoadFailed
}
