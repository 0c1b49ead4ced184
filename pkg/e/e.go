package e

import (
	"context"
	"errors"
	"fmt"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrGeocodeNotFound = errors.New("location not found")
	ErrGeocodeNetwork  = errors.New("error looking up location")
	ErrSubmitInFlight  = errors.New("submission already in progress")
	ErrNoDraft         = errors.New("no report draft open")
	ErrQueueEmpty      = errors.New("snapshot queue is empty")
)

func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	return fmt.Errorf("%s: %w", op, err)
}
