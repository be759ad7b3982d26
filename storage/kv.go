// Package storage provides the durable key-value layer the journal persists
// its collections into. Values are whole JSON documents; every write replaces
// the full value for its key.
package storage

// Well-known collection keys.
const (
	KeyAccounts = "accounts"
	KeyTrades   = "trades"
)

type KV interface {
	// Get returns the value stored under key, with ok=false when the key has
	// never been written.
	Get(key string) (value string, ok bool, err error)

	// Put replaces the value stored under key.
	Put(key, value string) error

	Close() error
}
