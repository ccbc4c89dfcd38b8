package driven

import "context"

// PreferenceStore defines the driven port for durable client-side key/value
// preferences. Get returns ("", false, nil) for a missing key.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
