package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VideoStatus enumerates media lifecycle states. The current upload flow
// drives uploading -> ready synchronously; processing and failed are
// reachable through UpdateStatus but nothing transitions into processing
// automatically.
type VideoStatus string

const (
	VideoStatusUploading  VideoStatus = "uploading"
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusReady      VideoStatus = "ready"
	VideoStatusFailed     VideoStatus = "failed"
)

// VideoStore defines persistence operations for media items.
type VideoStore interface {
	Create(ctx context.Context, params CreateVideoParams) (Video, error)
	GetByID(ctx context.Context, id int64) (Video, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]Video, error)
	// ListReady returns ready items newest first. Pagination is offset
	// based: pages can shift when items are inserted or deleted between
	// calls, which callers accept.
	ListReady(ctx context.Context, limit, offset int) ([]Video, error)
	UpdateStatus(ctx context.Context, id int64, status VideoStatus) error
	IncrementViews(ctx context.Context, id int64) error
	// DeleteByOwner removes the item only if ownerID matches the recorded
	// owner. It returns false, not an error, when the item is absent or
	// owned by someone else.
	DeleteByOwner(ctx context.Context, id int64, ownerID uuid.UUID) (bool, error)
}

// Video represents a stored media item. StorageKey is the only handle
// usable for deleting the backing object.
type Video struct {
	ID               int64
	OwnerID          uuid.UUID
	Title            string
	Description      string
	StorageKey       string
	StorageURL       string
	OriginalFilename string
	FileSizeBytes    int64
	DurationSeconds  *float64
	Status           VideoStatus
	ViewCount        int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateVideoParams contains parameters to create a media record.
type CreateVideoParams struct {
	OwnerID          uuid.UUID
	Title            string
	Description      string
	StorageKey       string
	StorageURL       string
	OriginalFilename string
	FileSizeBytes    int64
	DurationSeconds  *float64
	Status           VideoStatus
}
