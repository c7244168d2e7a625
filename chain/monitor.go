package chain

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/lumenwatch/tower/config"
	"github.com/lumenwatch/tower/params"
	"github.com/lumenwatch/tower/pkgs/cache"
	"github.com/lumenwatch/tower/pkgs/logger"
)

// EvtBlockConnected is emitted on the bus after a block has been
// dispatched to all listeners.
const EvtBlockConnected = "chain.block-connected"

// Monitor receives blocks from a chain backend and relays them, in
// order, to the registered listeners. It keeps the best-known header
// and dedups blocks it has already processed.
type Monitor struct {
	cfg       *config.AppConfig
	mtx       sync.Mutex
	tip       *Header
	listeners []Listener
	seen      *cache.Cache
	log       logger.Logger
}

// NewMonitor creates an instance of Monitor. tip may be nil when the
// tower starts from a fresh chain backend.
func NewMonitor(cfg *config.AppConfig, tip *Header) *Monitor {
	return &Monitor{
		cfg:  cfg,
		tip:  tip,
		seen: cache.NewCache(params.SeenBlocksCacheSize),
		log:  cfg.G().Log.Module("chain"),
	}
}

// Subscribe registers a listener. Listeners are notified in
// subscription order.
func (m *Monitor) Subscribe(l Listener) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.listeners = append(m.listeners, l)
}

// Tip returns the best-known header
func (m *Monitor) Tip() *Header {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.tip
}

// ConnectBlock processes a block that extends the best chain. The block
// is relayed to every listener before the tip is advanced. Blocks that
// were already processed are skipped silently.
func (m *Monitor) ConnectBlock(b *Block) error {
	if b == nil || b.Header == nil {
		return errors.New("nil block")
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.seen.Has(b.Header.Hash) {
		m.log.Debug("Ignoring known block", "Hash", b.Header.Hash.String())
		return nil
	}

	if m.tip != nil && !b.Header.PrevHash.Equal(m.tip.Hash) {
		return errors.Errorf("block %s does not extend the current tip", b.Header.Hash)
	}

	m.log.Info("New block received", "Hash", b.Header.Hash.String(), "Height", b.Header.Height)

	for _, l := range m.listeners {
		l.BlockConnected(b, b.Header.Height)
	}

	m.tip = b.Header
	m.seen.Add(b.Header.Hash, struct{}{})
	m.cfg.G().Bus.Emit(EvtBlockConnected, b.Header)

	return nil
}

// DisconnectBlock processes a block leaving the best chain during a
// reorganization. Listeners decide individually how to react; the
// monitor relays the notification, forgets the block hash and, if the
// block is the current tip, moves the tip back to its parent so the
// replacement blocks can be connected. Only the parent's hash and
// height are known at that point.
func (m *Monitor) DisconnectBlock(h *Header) {
	if h == nil {
		return
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.log.Info("Block disconnected", "Hash", h.Hash.String(), "Height", h.Height)

	for _, l := range m.listeners {
		l.BlockDisconnected(h, h.Height)
	}

	m.seen.Remove(h.Hash)

	if m.tip != nil && m.tip.Hash.Equal(h.Hash) {
		m.tip = &Header{Hash: h.PrevHash, Height: h.Height - 1}
	}
}
