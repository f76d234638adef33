package wardrobe

import (
	"context"
	"io"
)

// Repository persists the clothing inventory.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int) (Item, bool, error)
	// Create assigns the next id (max existing + 1, or 1) and appends the item.
	Create(ctx context.Context, item Item) (Item, error)
	// Update applies mutate to the stored item as one read-modify-write.
	Update(ctx context.Context, id int, mutate func(*Item)) (Item, bool, error)
}

// ObjectStorage abstracts blob storage for garment photos (R2/S3/local disk).
// Get reports a missing key with an error matching os.ErrNotExist.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// StoredObject captures persisted blob metadata.
type StoredObject struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}
