package storage

// Operations describe the operations of an engine
type Operations interface {

	// Put adds a record to the database
	Put(record *Record) error

	// Get a record by key
	Get(key []byte) (*Record, error)

	// Del deletes a record by key. It is a no-op if
	// the key does not exist.
	Del(key []byte) error

	// Iterate finds a set of records by prefix and passes them
	// to iterFunc for further processing.
	//
	// If iterFunc returns true, the iteration is stopped and
	// immediately released.
	//
	// If first is set to true, it begins from the first record,
	// otherwise it will begin from the last record.
	Iterate(prefix []byte, first bool, iterFunc func(rec *Record) bool)
}

// Engine provides an interface that describes a storage engine
type Engine interface {
	Operations

	// Close closes the database engine and frees resources
	Close() error
}
