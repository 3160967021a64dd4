package storage

import "fmt"

// StorageError reports a persistence failure for a specific key (corrupt
// record, backing store unavailable). It is surfaced to the caller instead of
// quietly treating the collection as empty.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: key %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
