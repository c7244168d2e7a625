package user

import (
	"github.com/pkg/errors"

	"github.com/lumenwatch/tower/storage"
	"github.com/lumenwatch/tower/types"
	"github.com/lumenwatch/tower/types/state"
	"github.com/lumenwatch/tower/util"
)

var (
	// ErrUserExists indicates that a user record already exists
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound indicates that a user record was not found
	ErrUserNotFound = errors.New("user not found")
)

// tagUser is the db record prefix for user records
var tagUser = []byte("user")

// Keeper manages durable user subscription records
type Keeper struct {
	db storage.Engine
}

// NewKeeper creates an instance of Keeper
func NewKeeper(db storage.Engine) *Keeper {
	return &Keeper{db: db}
}

// MakeUserKey returns the full db key of a user record
func MakeUserKey(id types.UserID) []byte {
	return storage.NewRecord(id.Bytes(), nil, tagUser).GetKey()
}

// Store inserts a new user record.
// Returns ErrUserExists if the user already has a record.
func (k *Keeper) Store(id types.UserID, info *state.UserInfo) error {
	if _, err := k.db.Get(MakeUserKey(id)); err == nil {
		return ErrUserExists
	} else if err != storage.ErrRecordNotFound {
		return errors.Wrap(err, "failed to check user existence")
	}
	return k.Update(id, info)
}

// Update upserts the record of a user
func (k *Keeper) Update(id types.UserID, info *state.UserInfo) error {
	rec := storage.NewRecord(id.Bytes(), util.ToBytes(info), tagUser)
	if err := k.db.Put(rec); err != nil {
		return errors.Wrap(err, "failed to put user record")
	}
	return nil
}

// Load returns the stored state of a user.
// Returns ErrUserNotFound if the user is unknown.
func (k *Keeper) Load(id types.UserID) (*state.UserInfo, error) {
	rec, err := k.db.Get(MakeUserKey(id))
	if err != nil {
		if err == storage.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to get user record")
	}

	var info state.UserInfo
	if err = rec.Scan(&info); err != nil {
		return nil, errors.Wrap(err, "failed to decode user record")
	}
	return &info, nil
}

// Remove deletes the record of a user.
// Removing an unknown user is a no-op.
func (k *Keeper) Remove(id types.UserID) error {
	return k.db.Del(MakeUserKey(id))
}

// ForEach passes every stored user to fn.
// Iteration stops when fn returns true.
func (k *Keeper) ForEach(fn func(id types.UserID, info *state.UserInfo) bool) error {
	var ferr error
	k.db.Iterate(storage.MakePrefix(tagUser), true, func(rec *storage.Record) bool {
		id, err := types.UserIDFromBytes(rec.Key)
		if err != nil {
			ferr = errors.Wrap(err, "bad user record key")
			return true
		}

		var info state.UserInfo
		if err = rec.Scan(&info); err != nil {
			ferr = errors.Wrap(err, "failed to decode user record")
			return true
		}

		return fn(id, &info)
	})
	return ferr
}
