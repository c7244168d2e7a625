package gatekeeper

import (
	"math"
	"sync"

	uuid "github.com/satori/go.uuid"
	funk "github.com/thoas/go-funk"

	"github.com/lumenwatch/tower/chain"
	"github.com/lumenwatch/tower/config"
	"github.com/lumenwatch/tower/crypto"
	"github.com/lumenwatch/tower/params"
	"github.com/lumenwatch/tower/pkgs/logger"
	"github.com/lumenwatch/tower/types"
	"github.com/lumenwatch/tower/types/core"
	"github.com/lumenwatch/tower/types/state"
)

const (
	// EvtUserRegistered is emitted on the bus after a successful
	// registration or renewal. Payload: *RegistrationReceipt.
	EvtUserRegistered = "gatekeeper.user-registered"

	// EvtUsersOutdated is emitted on the bus when users are purged
	// from the registry on a new block. Payload: []types.UserID.
	EvtUsersOutdated = "gatekeeper.users-outdated"
)

// Gatekeeper is the component in charge of managing access to the
// tower resources.
//
// It keeps track of user subscriptions and lets users interact with
// the tower based on them. A user is only allowed to send/request data
// to/from the tower given they have an ongoing subscription with
// available slots. This is the only component in the system with
// knowledge about users; all other components query the Gatekeeper for
// such information.
type Gatekeeper struct {
	cfg *config.AppConfig

	// mtx guards registeredUsers, outdatedUsers and the tip. The
	// durable store is serialized on its own within the engine.
	mtx sync.RWMutex

	// lastKnownBlockHeader is the last block header seen by the
	// gatekeeper; its height is the gatekeeper's clock
	lastKnownBlockHeader *chain.Header

	// subscriptionSlots is the number of slots new subscriptions
	// get by default
	subscriptionSlots uint32

	// subscriptionDuration is the subscription lifetime in blocks,
	// starting from the block the subscription is requested at
	subscriptionDuration uint32

	// expiryDelta is the grace period given to renew subscriptions,
	// in blocks
	expiryDelta uint32

	// registeredUsers holds the users registered within the tower
	registeredUsers map[types.UserID]*state.UserInfo

	// outdatedUsers holds users whose subscription has been
	// outdated. Kept around so other components can perform the
	// necessary cleanups when deleting data.
	outdatedUsers *outdatedUsersCache

	// users persists user state
	users core.UserKeeper

	log logger.Logger
}

// New creates an instance of Gatekeeper. The subscription parameters
// are taken from the config; lastKnownBlockHeader seeds the clock.
func New(cfg *config.AppConfig, lastKnownBlockHeader *chain.Header, users core.UserKeeper) *Gatekeeper {
	return &Gatekeeper{
		cfg:                  cfg,
		lastKnownBlockHeader: lastKnownBlockHeader,
		subscriptionSlots:    cfg.Subscription.Slots,
		subscriptionDuration: cfg.Subscription.Duration,
		expiryDelta:          cfg.Subscription.ExpiryDelta,
		registeredUsers:      make(map[types.UserID]*state.UserInfo),
		outdatedUsers:        newOutdatedUsersCache(params.OutdatedUsersCacheSizeBlocks),
		users:                users,
		log:                  cfg.G().Log.Module("gatekeeper"),
	}
}

// LoadFromStore rebuilds the in-memory user registry from the durable
// store. Meant to be called once, before the gatekeeper starts
// receiving blocks and requests.
func (g *Gatekeeper) LoadFromStore() (int, error) {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	count := 0
	err := g.users.ForEach(func(id types.UserID, info *state.UserInfo) bool {
		g.registeredUsers[id] = info
		count++
		return false
	})
	if err != nil {
		return 0, err
	}

	g.log.Info("Loaded registered users from store", "Count", count)
	return count, nil
}

// AuthenticateUser authenticates a user.
//
// Authentication is performed by recovering the public key that signed
// the message and checking it belongs to a registered user. All
// interaction with the tower should be guarded by this.
func (g *Gatekeeper) AuthenticateUser(message []byte, signature string) (types.UserID, error) {
	pk, err := crypto.RecoverPK(message, signature)
	if err != nil {
		return types.EmptyUserID, &AuthenticationFailure{"Wrong message or signature."}
	}

	userID := types.NewUserID(pk)

	g.mtx.RLock()
	defer g.mtx.RUnlock()

	if _, ok := g.registeredUsers[userID]; !ok {
		return types.EmptyUserID, &AuthenticationFailure{"User not found."}
	}

	return userID, nil
}

// AddUpdateUser adds a new user to the tower, or renews its
// subscription if already registered. Renewals add subscriptionSlots
// to the current count and reset the expiry time. The slot count
// saturates at the uint32 limit; a renewal that would exceed it fails
// with ErrMaxSlotsReached and leaves the subscription untouched.
func (g *Gatekeeper) AddUpdateUser(userID types.UserID) (*RegistrationReceipt, error) {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	blockCount := g.lastKnownBlockHeader.Height

	userInfo, ok := g.registeredUsers[userID]
	if ok {
		// User already exists, update the subscription
		if userInfo.AvailableSlots > math.MaxUint32-g.subscriptionSlots {
			return nil, ErrMaxSlotsReached
		}
		userInfo.AvailableSlots += g.subscriptionSlots
		userInfo.SubscriptionExpiry = blockCount + g.subscriptionDuration

		if err := g.users.Update(userID, userInfo); err != nil {
			g.log.Error("Failed to persist user update", "UserID", userID, "Err", err.Error())
		}
	} else {
		// New user
		userInfo = state.NewUserInfo(g.subscriptionSlots, blockCount+g.subscriptionDuration)
		if err := g.users.Store(userID, userInfo); err != nil {
			return nil, err
		}
		g.registeredUsers[userID] = userInfo
	}

	receipt := NewRegistrationReceipt(userID, userInfo.AvailableSlots, userInfo.SubscriptionExpiry)
	g.cfg.G().Bus.Emit(EvtUserRegistered, receipt)

	return receipt, nil
}

// AddUpdateAppointment adds an appointment to a given user, or updates
// it if already present (and belonging to the requester). For updates,
// the difference between the existing appointment size and the update
// is computed, so the same path handles growth, equality and shrink;
// shrinking refunds slots. Returns the remaining available slots.
//
// Callers are expected to have authenticated the user first.
func (g *Gatekeeper) AddUpdateAppointment(userID types.UserID, appointmentID uuid.UUID, appointment Appointment) (uint32, error) {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	userInfo, ok := g.registeredUsers[userID]
	if !ok {
		return 0, &AuthenticationFailure{"User not found."}
	}

	usedSlots := userInfo.Appointments[appointmentID]
	requiredSlots := ComputeAppointmentSlots(appointment.EncryptedBlobLen(), params.EncryptedBlobMaxSize)

	diff := int64(requiredSlots) - int64(usedSlots)
	if diff > int64(userInfo.AvailableSlots) {
		return 0, ErrNotEnoughSlots
	}

	userInfo.Appointments[appointmentID] = requiredSlots
	userInfo.AvailableSlots = uint32(int64(userInfo.AvailableSlots) - diff)

	if err := g.users.Update(userID, userInfo); err != nil {
		g.log.Error("Failed to persist appointment update", "UserID", userID, "Err", err.Error())
	}

	return userInfo.AvailableSlots, nil
}

// HasSubscriptionExpired checks whether the subscription of a user has
// expired. It returns the expiry height alongside.
func (g *Gatekeeper) HasSubscriptionExpired(userID types.UserID) (bool, uint32, error) {
	g.mtx.RLock()
	defer g.mtx.RUnlock()

	userInfo, ok := g.registeredUsers[userID]
	if !ok {
		return false, 0, &AuthenticationFailure{"User not found."}
	}

	return g.lastKnownBlockHeader.Height >= userInfo.SubscriptionExpiry, userInfo.SubscriptionExpiry, nil
}

// GetOutdatedUsers returns the users outdated at the given block
// height. A user is outdated at exactly the height where its renewal
// grace period ends (subscription expiry plus the expiry delta); users
// whose grace period ended at an earlier height are not included.
//
// The data is pulled from the cache if present, otherwise it is
// computed on the fly. Only UpdateOutdatedUsersCache writes to the
// cache.
func (g *Gatekeeper) GetOutdatedUsers(blockHeight uint32) map[types.UserID][]uuid.UUID {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.getOutdatedUsers(blockHeight)
}

// getOutdatedUsers is GetOutdatedUsers without locking.
// Callers must hold the mutex.
func (g *Gatekeeper) getOutdatedUsers(blockHeight uint32) map[types.UserID][]uuid.UUID {
	if users, ok := g.outdatedUsers.get(blockHeight); ok {
		return users
	}

	// A user is outdated at exactly expiry + expiryDelta. Users whose
	// outdate height has already passed are not re-surfaced; the chain
	// listener guarantees every height gets processed.
	users := make(map[types.UserID][]uuid.UUID)
	for userID, userInfo := range g.registeredUsers {
		if blockHeight == userInfo.SubscriptionExpiry+g.expiryDelta {
			users[userID] = userInfo.AppointmentIDs()
		}
	}

	return users
}

// GetOutdatedUserIDs returns the ids of the users outdated at the
// given block height
func (g *Gatekeeper) GetOutdatedUserIDs(blockHeight uint32) []types.UserID {
	return funk.Keys(g.GetOutdatedUsers(blockHeight)).([]types.UserID)
}

// GetOutdatedAppointments returns the appointments outdated at the
// given block height, from any user
func (g *Gatekeeper) GetOutdatedAppointments(blockHeight uint32) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var appointments []uuid.UUID
	for _, ids := range g.GetOutdatedUsers(blockHeight) {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			appointments = append(appointments, id)
		}
	}
	return appointments
}

// UpdateOutdatedUsersCache computes the users outdated at the given
// height and records them in the cache. If the cache grows beyond its
// maximum size, the entry with the lowest height is dropped and its
// users are removed from the durable store in the same critical
// section. Heights already cached are left untouched and an empty map
// is returned.
func (g *Gatekeeper) UpdateOutdatedUsersCache(blockHeight uint32) map[types.UserID][]uuid.UUID {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return g.updateOutdatedUsersCache(blockHeight)
}

// updateOutdatedUsersCache is UpdateOutdatedUsersCache without
// locking. Callers must hold the mutex.
func (g *Gatekeeper) updateOutdatedUsersCache(blockHeight uint32) map[types.UserID][]uuid.UUID {
	outdatedUsers := make(map[types.UserID][]uuid.UUID)

	if g.outdatedUsers.has(blockHeight) {
		return outdatedUsers
	}

	outdatedUsers = g.getOutdatedUsers(blockHeight)

	for userID := range g.outdatedUsers.put(blockHeight, outdatedUsers) {
		if err := g.users.Remove(userID); err != nil {
			g.log.Error("Failed to remove evicted user from store",
				"UserID", userID, "Err", err.Error())
		}
	}

	return outdatedUsers
}

// DeleteAppointments removes a collection of appointments from the
// users' subscriptions, both from memory and from the durable store,
// refunding the slots they took up.
//
// Appointments are only de-linked from users, not actually removed;
// the gatekeeper holds no appointment data, just references. Unknown
// users and unknown appointments are silently skipped.
func (g *Gatekeeper) DeleteAppointments(appointments map[uuid.UUID]types.UserID) {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	updatedUsers := make(map[types.UserID]struct{})

	for appointmentID, userID := range appointments {
		userInfo, ok := g.registeredUsers[userID]
		if !ok {
			continue
		}
		slots, ok := userInfo.Appointments[appointmentID]
		if !ok {
			continue
		}
		delete(userInfo.Appointments, appointmentID)
		userInfo.AvailableSlots += slots
		updatedUsers[userID] = struct{}{}
	}

	for userID := range updatedUsers {
		if err := g.users.Update(userID, g.registeredUsers[userID]); err != nil {
			g.log.Error("Failed to persist appointment deletion",
				"UserID", userID, "Err", err.Error())
		}
	}
}

// IsUserRegistered checks whether a user is currently registered
func (g *Gatekeeper) IsUserRegistered(userID types.UserID) bool {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	_, ok := g.registeredUsers[userID]
	return ok
}

// RegisteredUserCount returns the number of registered users
func (g *Gatekeeper) RegisteredUserCount() int {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return len(g.registeredUsers)
}

// LastKnownBlockHeader returns the gatekeeper's view of the tip
func (g *Gatekeeper) LastKnownBlockHeader() *chain.Header {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.lastKnownBlockHeader
}

// BlockConnected implements chain.Listener.
//
// This is how the gatekeeper keeps track of time in order to expire
// and outdate subscriptions. Expired user deletion is delayed: users
// are removed when their subscription is outdated, not expired, giving
// them the grace period to renew. The tip is advanced under the same
// lock that guards the registry so registration receipts never carry a
// stale height.
func (g *Gatekeeper) BlockConnected(block *chain.Block, height uint32) {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	outdatedUsers := g.updateOutdatedUsersCache(height)

	for userID := range outdatedUsers {
		delete(g.registeredUsers, userID)
	}

	if block.Header != nil {
		g.lastKnownBlockHeader = block.Header
	}

	if len(outdatedUsers) > 0 {
		ids := funk.Keys(outdatedUsers).([]types.UserID)
		g.log.Info("Users outdated", "Height", height, "Count", len(ids))
		g.cfg.G().Bus.Emit(EvtUsersOutdated, ids)
	}
}

// BlockDisconnected implements chain.Listener.
//
// Reorg handling is not supported: the subscription clock only moves
// forward and evictions are not rolled back. The notification is
// logged and ignored.
func (g *Gatekeeper) BlockDisconnected(header *chain.Header, height uint32) {
	g.log.Warn("Ignoring disconnected block", "Height", height)
}
