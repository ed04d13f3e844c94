package async

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned to the caller of an attempt whose outcome was dropped.
	// Cancelled attempts never change the controller's visible state.
	ErrCancelled = errors.New("async: operation cancelled")

	// ErrSuperseded means a newer Execute started before this attempt finished.
	ErrSuperseded = fmt.Errorf("%w: superseded by a newer execution", ErrCancelled)

	// ErrDisposed means the controller was disposed before or during the attempt.
	ErrDisposed = fmt.Errorf("%w: controller disposed", ErrCancelled)
)

// IsCancellation reports whether err is a cancellation signal rather than a failure.
// context.DeadlineExceeded is a failure: timeouts belong to the work function.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}
