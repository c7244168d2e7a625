package system

import (
	"github.com/pkg/errors"

	"github.com/lumenwatch/tower/chain"
	"github.com/lumenwatch/tower/storage"
	"github.com/lumenwatch/tower/util"
)

// tagLastBlockHeader is the db key of the last processed block header
var tagLastBlockHeader = []byte("sys_last_block_header")

// Keeper manages node-level durable state
type Keeper struct {
	db storage.Engine
}

// NewKeeper creates an instance of Keeper
func NewKeeper(db storage.Engine) *Keeper {
	return &Keeper{db: db}
}

// SetLastBlockHeader persists the last processed block header
func (k *Keeper) SetLastBlockHeader(h *chain.Header) error {
	rec := storage.NewRecord(tagLastBlockHeader, util.ToBytes(h))
	if err := k.db.Put(rec); err != nil {
		return errors.Wrap(err, "failed to put last block header")
	}
	return nil
}

// GetLastBlockHeader returns the last processed block header.
// Returns storage.ErrRecordNotFound if none has been stored yet.
func (k *Keeper) GetLastBlockHeader() (*chain.Header, error) {
	rec, err := k.db.Get(storage.NewRecord(tagLastBlockHeader, nil).GetKey())
	if err != nil {
		return nil, err
	}

	var h chain.Header
	if err = rec.Scan(&h); err != nil {
		return nil, errors.Wrap(err, "failed to decode last block header")
	}
	return &h, nil
}
