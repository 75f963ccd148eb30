package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	// ErrNonTerminalExists is returned by the store when a user already owns
	// a pending or active record.
	ErrNonTerminalExists = errors.New("user already has a pending or active subscription")
	ErrInvalidPeriod     = errors.New("subscription period must be positive")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
