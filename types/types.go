package types

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// UserIDLength is the size of a serialized user id. User ids are
// compressed secp256k1 public keys.
const UserIDLength = 33

// UserID uniquely identifies a registered user. It is the compressed
// serialization of the public key the user authenticates with.
type UserID [UserIDLength]byte

// EmptyUserID is an empty UserID
var EmptyUserID = UserID([UserIDLength]byte{})

// NewUserID creates a UserID from a public key
func NewUserID(pk *btcec.PublicKey) UserID {
	var id UserID
	copy(id[:], pk.SerializeCompressed())
	return id
}

// UserIDFromBytes copies b into a UserID.
// Returns an error if b has an unexpected length.
func UserIDFromBytes(b []byte) (UserID, error) {
	if len(b) != UserIDLength {
		return EmptyUserID, errors.Errorf("invalid user id length: %d", len(b))
	}
	var id UserID
	copy(id[:], b)
	return id, nil
}

// UserIDFromHex decodes a hex-encoded user id
func UserIDFromHex(str string) (UserID, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return EmptyUserID, errors.Wrap(err, "invalid hex")
	}
	return UserIDFromBytes(b)
}

// Bytes returns a slice of bytes
func (u UserID) Bytes() []byte {
	if u.IsEmpty() {
		return []byte{}
	}
	return u[:]
}

// Equal checks equality between u and o
func (u UserID) Equal(o UserID) bool { return bytes.Equal(u.Bytes(), o.Bytes()) }

func (u UserID) String() string { return hex.EncodeToString(u[:]) }

// IsEmpty checks whether the id is empty (having zero values)
func (u UserID) IsEmpty() bool {
	return u == EmptyUserID
}
