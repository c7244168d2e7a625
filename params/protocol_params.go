package params

var (
	// EncryptedBlobMaxSize is the number of encrypted blob bytes covered
	// by a single appointment slot. Appointments bigger than this take
	// up multiple slots, rounded up.
	EncryptedBlobMaxSize = 2048

	// OutdatedUsersCacheSizeBlocks is the number of distinct block
	// heights the outdated users cache holds before evicting the
	// lowest one.
	OutdatedUsersCacheSizeBlocks = 10

	// DefaultSubscriptionSlots is the number of appointment slots
	// granted per registration or renewal.
	DefaultSubscriptionSlots = uint32(10000)

	// DefaultSubscriptionDuration is the subscription lifetime in blocks,
	// counted from the block the subscription is requested at.
	DefaultSubscriptionDuration = uint32(4320)

	// DefaultExpiryDelta is the grace period, in blocks, between a
	// subscription expiring and the user being outdated.
	DefaultExpiryDelta = uint32(6)

	// SeenBlocksCacheSize is the number of recently processed block
	// hashes the chain monitor remembers in order to dedup notifications.
	SeenBlocksCacheSize = 1024
)
