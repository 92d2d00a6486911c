// Package kv provides the durable text key-value substrate the persistence
// adapter writes to.
package kv

// Store is a flat map of string keys to text values.
type Store interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value for key wholesale.
	Set(key, value string) error
	// Delete removes keys; missing keys are ignored.
	Delete(keys ...string) error
	Close() error
	// Path is the backing file, or "" for in-memory stores.
	Path() string
}
