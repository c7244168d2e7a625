package storage

import (
	"bytes"

	"github.com/lumenwatch/tower/util"
)

const (
	// KeyPrefixSeparator is used to separate prefix and key
	KeyPrefixSeparator = ";"
	prefixSeparator    = ":"
)

// Record represents an item in the database
type Record struct {
	Key    []byte `json:"key"`
	Value  []byte `json:"value"`
	Prefix []byte `json:"prefix"`
}

// NewRecord creates a key value object.
// The prefixes provided are joined together and prepended
// to the key before insertion.
func NewRecord(key, value []byte, prefixes ...[]byte) *Record {
	return &Record{Key: key, Value: value, Prefix: MakePrefix(prefixes...)}
}

// NewFromKeyValue takes a full key and creates a Record
func NewFromKeyValue(key []byte, value []byte) *Record {
	var k, p []byte

	parts := bytes.SplitN(key, []byte(KeyPrefixSeparator), 2)
	if len(parts) == 2 {
		p = parts[0]
		k = parts[1]
	} else if len(parts) == 1 {
		k = parts[0]
	}

	return &Record{Key: k, Value: value, Prefix: p}
}

// IsEmpty checks whether the object is empty
func (r *Record) IsEmpty() bool {
	return len(r.Key) == 0 && len(r.Value) == 0
}

// Scan marshals the value into dest
func (r *Record) Scan(dest interface{}) error {
	return util.BytesToObject(r.Value, dest)
}

// GetKey creates and returns the full key
func (r *Record) GetKey() []byte {
	return MakeKey(r.Key, r.Prefix)
}

// Equal performs equality check with another Record
func (r *Record) Equal(other *Record) bool {
	return bytes.Equal(r.Key, other.Key) && bytes.Equal(r.Value, other.Value)
}

// MakePrefix creates a prefix string from the given prefixes
func MakePrefix(prefixes ...[]byte) []byte {
	return bytes.Join(prefixes, []byte(prefixSeparator))
}

// MakeKey constructs a full key from the key and prefixes
func MakeKey(key []byte, prefix []byte) []byte {
	var sep = []byte(KeyPrefixSeparator)
	if len(key) == 0 || len(prefix) == 0 {
		sep = []byte{}
	}
	return append(prefix, append(sep, key...)...)
}
