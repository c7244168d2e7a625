package chain

import (
	"bytes"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/lumenwatch/tower/util"
)

// HashLength is the size of a block hash
const HashLength = 32

// Hash is a block hash
type Hash [HashLength]byte

// EmptyHash is an empty Hash
var EmptyHash = Hash([HashLength]byte{})

// NewHash copies b into a Hash.
// Returns an error if b has an unexpected length.
func NewHash(b []byte) (Hash, error) {
	if len(b) != HashLength {
		return EmptyHash, errors.Errorf("invalid hash length: %d", len(b))
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

// HashFromBytes copies b into a Hash. Panics on bad input.
func HashFromBytes(b []byte) Hash {
	h, err := NewHash(b)
	if err != nil {
		panic(err)
	}
	return h
}

// Bytes returns a slice of bytes
func (h Hash) Bytes() []byte {
	return h[:]
}

// Equal checks equality between h and o
func (h Hash) Equal(o Hash) bool { return bytes.Equal(h.Bytes(), o.Bytes()) }

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// IsEmpty checks whether the hash is empty (having zero values)
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// Header is a block header as seen by the tower. Only the fields the
// tower cares about are kept; everything else stays with the chain
// backend that produced it.
type Header struct {
	// Hash is the block hash
	Hash Hash `json:"hash"`

	// PrevHash is the hash of the previous block
	PrevHash Hash `json:"prevHash"`

	// Height is the block height
	Height uint32 `json:"height"`

	// Time is the block timestamp (unix seconds)
	Time int64 `json:"time"`
}

// EncodeMsgpack implements msgpack.CustomEncoder
func (h *Header) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeMulti(h.Hash.Bytes(), h.PrevHash.Bytes(), h.Height, h.Time)
}

// DecodeMsgpack implements msgpack.CustomDecoder
func (h *Header) DecodeMsgpack(dec *msgpack.Decoder) error {
	var hash, prevHash []byte
	if err := dec.DecodeMulti(&hash, &prevHash, &h.Height, &h.Time); err != nil {
		return err
	}
	var err error
	if h.Hash, err = NewHash(hash); err != nil {
		return err
	}
	h.PrevHash, err = NewHash(prevHash)
	return err
}

// Block is a connected block: its header plus the raw transactions it
// carries. The tower never interprets transaction payloads.
type Block struct {
	Header *Header  `json:"header"`
	Txs    [][]byte `json:"txs"`
}

// RandomHash returns a random block hash. Only useful in tests and
// local chain simulations.
func RandomHash() Hash {
	return HashFromBytes(util.RandBytes(HashLength))
}

// Listener is implemented by components that need to be notified of
// blocks being connected to and disconnected from the best chain.
// Calls are made in canonical chain order.
type Listener interface {
	// BlockConnected is called when a block extends the best chain
	BlockConnected(block *Block, height uint32)

	// BlockDisconnected is called when a block is removed from the
	// best chain during a reorganization
	BlockDisconnected(header *Header, height uint32)
}
