package gatekeeper

import (
	"github.com/lumenwatch/tower/types"
)

// RegistrationReceipt is handed to a user after a successful
// registration or renewal. It carries the post-registration state of
// the subscription.
type RegistrationReceipt struct {
	// UserID is the id of the registered user
	UserID types.UserID `json:"userId"`

	// AvailableSlots is the slot count after the registration
	AvailableSlots uint32 `json:"availableSlots"`

	// SubscriptionExpiry is the height the subscription expires at
	SubscriptionExpiry uint32 `json:"subscriptionExpiry"`
}

// NewRegistrationReceipt creates an instance of RegistrationReceipt
func NewRegistrationReceipt(userID types.UserID, availableSlots, subscriptionExpiry uint32) *RegistrationReceipt {
	return &RegistrationReceipt{
		UserID:             userID,
		AvailableSlots:     availableSlots,
		SubscriptionExpiry: subscriptionExpiry,
	}
}
