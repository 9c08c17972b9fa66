package storage

// Store is the durable key-value namespace backing the cart and session
// stores. It stands in for the browser's local storage in the original
// product: small JSON blobs under app-prefixed keys. Callers namespace their
// own keys (e.g. "renewrubber_cart").
type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(key string) ([]byte, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases any underlying resources.
	Close() error
}
