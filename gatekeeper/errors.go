package gatekeeper

import "github.com/pkg/errors"

var (
	// ErrNotEnoughSlots indicates that a user subscription has not
	// enough slots left to fit an appointment
	ErrNotEnoughSlots = errors.New("not enough slots")

	// ErrMaxSlotsReached indicates that a renewal would push a user
	// subscription beyond the slots limit
	ErrMaxSlotsReached = errors.New("subscription slots limit reached")
)

// AuthenticationFailure is returned when a user cannot be
// authenticated. Reason is a short human-readable string.
type AuthenticationFailure struct {
	Reason string
}

func (e *AuthenticationFailure) Error() string {
	return e.Reason
}

// IsAuthenticationFailure checks whether err is an AuthenticationFailure
func IsAuthenticationFailure(err error) bool {
	_, ok := err.(*AuthenticationFailure)
	return ok
}
