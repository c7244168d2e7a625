package gatekeeper

import (
	uuid "github.com/satori/go.uuid"

	"github.com/lumenwatch/tower/types"
)

// outdatedUsersCache holds, per block height, the users whose
// subscription got outdated at that height. It is bounded to a fixed
// number of distinct heights; once the bound is exceeded the lowest
// height is evicted. A single height may hold any number of users.
//
// The cache is not safe for concurrent use; the gatekeeper mutex
// guards it.
type outdatedUsersCache struct {
	capacity int
	entries  map[uint32]map[types.UserID][]uuid.UUID
}

func newOutdatedUsersCache(capacity int) *outdatedUsersCache {
	return &outdatedUsersCache{
		capacity: capacity,
		entries:  make(map[uint32]map[types.UserID][]uuid.UUID),
	}
}

// has checks whether the cache holds an entry for the given height
func (c *outdatedUsersCache) has(height uint32) bool {
	_, ok := c.entries[height]
	return ok
}

// get returns a copy of the entry for the given height
func (c *outdatedUsersCache) get(height uint32) (map[types.UserID][]uuid.UUID, bool) {
	entry, ok := c.entries[height]
	if !ok {
		return nil, false
	}
	return copyOutdatedUsers(entry), true
}

// put inserts an entry for the given height. If the cache grows beyond
// its capacity, the entry with the lowest height is removed and its
// users are returned so the caller can clean up after them.
func (c *outdatedUsersCache) put(height uint32, users map[types.UserID][]uuid.UUID) map[types.UserID][]uuid.UUID {
	c.entries[height] = copyOutdatedUsers(users)

	if len(c.entries) <= c.capacity {
		return nil
	}

	var lowest uint32
	var found bool
	for h := range c.entries {
		if !found || h < lowest {
			lowest = h
			found = true
		}
	}

	evicted := c.entries[lowest]
	delete(c.entries, lowest)
	return evicted
}

// len returns the number of heights currently cached
func (c *outdatedUsersCache) len() int {
	return len(c.entries)
}

// copyOutdatedUsers deep-copies an outdated users map
func copyOutdatedUsers(users map[types.UserID][]uuid.UUID) map[types.UserID][]uuid.UUID {
	cp := make(map[types.UserID][]uuid.UUID, len(users))
	for id, apts := range users {
		cp[id] = append([]uuid.UUID{}, apts...)
	}
	return cp
}
