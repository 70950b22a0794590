package repositories

import "context"

// AudioStore abstracts the object store that holds synthesized audio
// artifacts for playback.
type AudioStore interface {
	// Put uploads audio bytes under the given key and returns a URL the
	// voice platform can fetch for playback.
	Put(ctx context.Context, key string, audio []byte) (string, error)
}
