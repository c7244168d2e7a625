package storage

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
)

// ErrRecordNotFound indicates that a record was not found
var ErrRecordNotFound = fmt.Errorf("record not found")

type noopLogger struct{}

func (*noopLogger) Errorf(string, ...interface{})   {}
func (*noopLogger) Warningf(string, ...interface{}) {}
func (*noopLogger) Infof(string, ...interface{})    {}
func (*noopLogger) Debugf(string, ...interface{})   {}

// Badger implements Engine. It provides storage functions
// built on top of the badger key/value database.
type Badger struct {
	lck    *sync.Mutex
	db     *badger.DB
	closed bool
}

// NewBadger creates and opens a badger storage engine.
// If dir is empty, an in-memory database is created.
func NewBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir)
	opts = opts.WithTruncate(true)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = &noopLogger{}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	return &Badger{lck: &sync.Mutex{}, db: db}, nil
}

// GetDB returns the underlying badger database
func (b *Badger) GetDB() *badger.DB {
	return b.db
}

// Put adds a record to the database
func (b *Badger) Put(record *Record) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(record.GetKey(), record.Value)
	})
}

// Get a record by key
func (b *Badger) Get(key []byte) (*Record, error) {
	var rec *Record
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return errors.Wrap(err, "failed to read value")
		}
		rec = NewFromKeyValue(key, val)
		return nil
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Del deletes a record by key
func (b *Badger) Del(key []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// Iterate finds a set of records by prefix and passes them to iterFunc
// for further processing.
//
// If iterFunc returns true, the iteration is stopped and immediately released.
//
// If first is set to true, it begins from the first record, otherwise
// it will begin from the last record.
func (b *Badger) Iterate(prefix []byte, first bool, iterFunc func(rec *Record) bool) {
	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = !first
		it := txn.NewIterator(opts)
		defer it.Close()

		var seekKey = append([]byte{}, prefix...)
		if opts.Reverse {
			seekKey = append(seekKey, 0xFF)
		}

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			v, _ := item.ValueCopy(nil)
			if iterFunc(NewFromKeyValue(item.KeyCopy(nil), v)) {
				return nil
			}
		}
		return nil
	})
}

// Closed checks whether the database has been closed
func (b *Badger) Closed() bool {
	b.lck.Lock()
	defer b.lck.Unlock()
	return b.closed
}

// Close closes the database engine and frees resources
func (b *Badger) Close() error {
	b.lck.Lock()
	defer b.lck.Unlock()
	if b.db != nil && !b.closed {
		b.closed = true
		return b.db.Close()
	}
	return nil
}
