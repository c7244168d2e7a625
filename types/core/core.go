package core

import (
	"github.com/lumenwatch/tower/chain"
	"github.com/lumenwatch/tower/types"
	"github.com/lumenwatch/tower/types/state"
)

// UserKeeper describes the durable store for user subscription state.
// The full appointment map is persisted with each user so the in-memory
// view can be reconstructed across restarts.
type UserKeeper interface {
	// Store inserts a new user. Returns ErrUserExists if a record
	// for the user already exists.
	Store(id types.UserID, info *state.UserInfo) error

	// Update upserts the state of an existing user
	Update(id types.UserID, info *state.UserInfo) error

	// Load returns the stored state of a user.
	// Returns ErrUserNotFound if the user is unknown.
	Load(id types.UserID) (*state.UserInfo, error)

	// Remove deletes a user. Removing an unknown user is a no-op.
	Remove(id types.UserID) error

	// ForEach passes every stored user to fn. Iteration stops
	// when fn returns true.
	ForEach(fn func(id types.UserID, info *state.UserInfo) bool) error
}

// SystemKeeper describes the durable store for node-level state
type SystemKeeper interface {
	// SetLastBlockHeader persists the last processed block header
	SetLastBlockHeader(h *chain.Header) error

	// GetLastBlockHeader returns the last processed block header.
	// Returns storage.ErrRecordNotFound if none has been stored.
	GetLastBlockHeader() (*chain.Header, error)
}

// Keepers provides access to the state keepers of the tower
type Keepers interface {
	UserKeeper() UserKeeper
	SystemKeeper() SystemKeeper
}
