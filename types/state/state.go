package state

import (
	uuid "github.com/satori/go.uuid"
	"github.com/vmihailenco/msgpack/v4"
)

// UserInfo holds the subscription state of a registered user.
type UserInfo struct {
	// AvailableSlots is the number of appointment slots the user
	// has left on its subscription.
	AvailableSlots uint32 `json:"availableSlots"`

	// SubscriptionExpiry is the block height at which the user
	// subscription expires.
	SubscriptionExpiry uint32 `json:"subscriptionExpiry"`

	// Appointments maps the ids of the appointments held for the user
	// to the number of slots each one takes from the subscription.
	Appointments map[uuid.UUID]uint32 `json:"appointments"`
}

// NewUserInfo creates an instance of UserInfo with no appointments
func NewUserInfo(availableSlots, subscriptionExpiry uint32) *UserInfo {
	return &UserInfo{
		AvailableSlots:     availableSlots,
		SubscriptionExpiry: subscriptionExpiry,
		Appointments:       make(map[uuid.UUID]uint32),
	}
}

// AppointmentIDs returns the ids of all appointments held for the user
func (u *UserInfo) AppointmentIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(u.Appointments))
	for id := range u.Appointments {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns a deep copy of the user info
func (u *UserInfo) Clone() *UserInfo {
	cp := NewUserInfo(u.AvailableSlots, u.SubscriptionExpiry)
	for id, slots := range u.Appointments {
		cp.Appointments[id] = slots
	}
	return cp
}

// EncodeMsgpack implements msgpack.CustomEncoder.
// Appointment ids are written as raw bytes since msgpack cannot
// use byte arrays as map keys.
func (u *UserInfo) EncodeMsgpack(enc *msgpack.Encoder) error {
	apts := make(map[string]uint32, len(u.Appointments))
	for id, slots := range u.Appointments {
		apts[string(id.Bytes())] = slots
	}
	return enc.EncodeMulti(u.AvailableSlots, u.SubscriptionExpiry, apts)
}

// DecodeMsgpack implements msgpack.CustomDecoder
func (u *UserInfo) DecodeMsgpack(dec *msgpack.Decoder) error {
	var apts map[string]uint32
	if err := dec.DecodeMulti(&u.AvailableSlots, &u.SubscriptionExpiry, &apts); err != nil {
		return err
	}
	u.Appointments = make(map[uuid.UUID]uint32, len(apts))
	for rawID, slots := range apts {
		id, err := uuid.FromBytes([]byte(rawID))
		if err != nil {
			return err
		}
		u.Appointments[id] = slots
	}
	return nil
}
