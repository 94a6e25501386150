package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount is returned when the amount to convert is not a finite number.
var ErrInvalidAmount = errors.New("invalid amount: must be a finite number")

// ErrUnknownPair is the sentinel matched by errors.Is for pairs with no rate entry.
var ErrUnknownPair = errors.New("unknown conversion pair")

// UnknownPairError reports a conversion request for an ordered pair that has
// no direct rate entry. Both codes are carried so callers can surface them.
type UnknownPairError struct {
	From string
	To   string
}

func (e *UnknownPairError) Error() string {
	return fmt.Sprintf("no conversion rate from %s to %s", e.From, e.To)
}

// Unwrap makes errors.Is(err, ErrUnknownPair) hold for any UnknownPairError.
func (e *UnknownPairError) Unwrap() error { return ErrUnknownPair }
