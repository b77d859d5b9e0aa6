package ports

// FlagStore persists application state as one JSON blob per key. Missing
// or unreadable keys are treated as absent rather than fatal so the app
// always starts with usable defaults.
type FlagStore interface {
	// Get unmarshals the blob at key into out. It returns false when the
	// key is missing or the blob does not fit out's shape.
	Get(key string, out any) bool

	// Read returns the raw blob at key for callers that need to inspect
	// legacy shapes before unmarshaling.
	Read(key string) ([]byte, bool)

	// Set marshals v and writes it at key.
	Set(key string, v any) error

	// Delete removes the blob at key. Deleting a missing key is not an
	// error.
	Delete(key string) error
}
