package ports

import "context"

// SnapshotStore persists what the engine has already notified for. Get reports
// ok=false for a key that was never written; GetInt returns -1 in that case.
type SnapshotStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key string, value string) error
	GetInt(ctx context.Context, key string) (int, error)
	PutInt(ctx context.Context, key string, value int) error
}
