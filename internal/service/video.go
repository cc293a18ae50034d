package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
)

// UploadLimits caps upload sizes per media category, in bytes.
type UploadLimits struct {
	MaxVideoBytes int64
	MaxAudioBytes int64
	MaxImageBytes int64
}

// DefaultUploadLimits mirrors the configured defaults: 100 MiB video,
// 20 MiB audio, 5 MiB profile images.
func DefaultUploadLimits() UploadLimits {
	return UploadLimits{
		MaxVideoBytes: 100 << 20,
		MaxAudioBytes: 20 << 20,
		MaxImageBytes: 5 << 20,
	}
}

// Video handles the media item lifecycle: upload, listing, reads with view
// counting, and owner-checked deletion.
type Video struct {
	videoStore model.VideoStore
	userStore  model.UserStore
	storage    model.Storage
	limits     UploadLimits
	logger     *logger.Logger
}

// NewVideo creates a new Video service.
func NewVideo(
	videoStore model.VideoStore,
	userStore model.UserStore,
	storage model.Storage,
	limits UploadLimits,
	logger *logger.Logger,
) *Video {
	return &Video{
		videoStore: videoStore,
		userStore:  userStore,
		storage:    storage,
		limits:     limits,
		logger:     logger,
	}
}

// UploadParams contains parameters to upload a media item.
type UploadParams struct {
	Title       string
	Description string
	Filename    string
	Size        int64
	ContentType string
	Body        io.Reader
}

// Page window bounds for listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Upload validates the payload, stores the object under a server-generated
// key, records the metadata and flips the record to ready once the gateway
// confirms the object. MIME type and size are checked before any byte
// reaches the store.
func (s *Video) Upload(ctx context.Context, ownerID uuid.UUID, params UploadParams) (model.Video, error) {
	if params.Title == "" {
		return model.Video{}, fmt.Errorf("%w: title is required", model.ErrInvalidInput)
	}
	if params.Body == nil || params.Filename == "" {
		return model.Video{}, fmt.Errorf("%w: video file is required", model.ErrInvalidInput)
	}
	if !strings.HasPrefix(params.ContentType, "video/") {
		return model.Video{}, fmt.Errorf("%w: %s", model.ErrUnsupportedMediaType, params.ContentType)
	}
	if params.Size > s.limits.MaxVideoBytes {
		return model.Video{}, fmt.Errorf("%w: %d bytes exceeds cap of %d", model.ErrFileTooLarge, params.Size, s.limits.MaxVideoBytes)
	}

	// The owner must exist at creation time.
	if _, err := s.userStore.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Video{}, fmt.Errorf("%w: owner does not exist", model.ErrUnauthorized)
		}
		return model.Video{}, fmt.Errorf("failed to get owner: %w", err)
	}

	key := GenerateStorageKey("videos", params.Filename)

	video, err := s.videoStore.Create(ctx, model.CreateVideoParams{
		OwnerID:          ownerID,
		Title:            params.Title,
		Description:      params.Description,
		StorageKey:       key,
		StorageURL:       s.storage.PublicURL(key),
		OriginalFilename: params.Filename,
		FileSizeBytes:    params.Size,
		Status:           model.VideoStatusUploading,
	})
	if err != nil {
		return model.Video{}, fmt.Errorf("failed to create video record: %w", err)
	}

	if _, err := s.storage.Put(ctx, key, params.Body, params.Size, params.ContentType); err != nil {
		s.logger.Error("Video service: object upload failed",
			"video_id", video.ID,
			"storage_key", key,
			"error", err.Error())
		if statusErr := s.videoStore.UpdateStatus(ctx, video.ID, model.VideoStatusFailed); statusErr != nil {
			s.logger.Error("Video service: failed to mark video failed",
				"video_id", video.ID,
				"error", statusErr.Error())
		}
		return model.Video{}, fmt.Errorf("%w: %s", model.ErrStorageFailure, err)
	}

	if err := s.videoStore.UpdateStatus(ctx, video.ID, model.VideoStatusReady); err != nil {
		return model.Video{}, fmt.Errorf("failed to mark video ready: %w", err)
	}
	video.Status = model.VideoStatusReady

	s.logger.Info("Video service: upload completed",
		"video_id", video.ID,
		"owner_id", ownerID,
		"storage_key", key)

	return video, nil
}

// Get returns a media item by id and bumps its view counter. The
// increment is best effort: a counting failure is logged, never surfaced.
func (s *Video) Get(ctx context.Context, id int64) (model.Video, error) {
	video, err := s.videoStore.GetByID(ctx, id)
	if err != nil {
		return model.Video{}, fmt.Errorf("failed to get video: %w", err)
	}

	if err := s.videoStore.IncrementViews(ctx, id); err != nil {
		s.logger.Error("Video service: failed to increment view count",
			"video_id", id,
			"error", err.Error())
	} else {
		video.ViewCount++
	}

	return video, nil
}

// List returns ready items, newest first. Page numbering starts at 1;
// limit is clamped to MaxPageSize. Offset pagination drifts when items
// are inserted or deleted between pages, which callers accept.
func (s *Video) List(ctx context.Context, page, limit int) ([]model.Video, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	videos, err := s.videoStore.ListReady(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// ListByOwner returns all of one user's media items, newest first.
func (s *Video) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Video, error) {
	videos, err := s.videoStore.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos by owner: %w", err)
	}
	return videos, nil
}

// Delete removes a media item and its backing object. Only the recorded
// owner may delete. The object is deleted before the metadata record; if
// the store refuses, the record is kept so no object is ever orphaned
// invisibly.
func (s *Video) Delete(ctx context.Context, callerID uuid.UUID, id int64) error {
	video, err := s.videoStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get video: %w", err)
	}
	if video.OwnerID != callerID {
		s.logger.Info("Video service: delete refused",
			"video_id", id,
			"owner_id", video.OwnerID,
			"caller_id", callerID)
		return model.ErrNotOwner
	}

	if _, err := s.storage.Delete(ctx, video.StorageKey); err != nil {
		s.logger.Error("Video service: object deletion failed, keeping record",
			"video_id", id,
			"storage_key", video.StorageKey,
			"error", err.Error())
		return fmt.Errorf("%w: %s", model.ErrStorageFailure, err)
	}

	deleted, err := s.videoStore.DeleteByOwner(ctx, id, callerID)
	if err != nil {
		return fmt.Errorf("failed to delete video record: %w", err)
	}
	if !deleted {
		// Lost a race with another delete of the same item.
		return model.ErrNotFound
	}

	s.logger.Info("Video service: video deleted",
		"video_id", id,
		"owner_id", callerID)

	return nil
}

// GenerateStorageKey builds an object key of the form
// <category>/<unix-ms>-<random-id><ext>. The category is fixed by the
// caller, never taken from client input, and the random id keeps keys
// collision free and unguessable.
func GenerateStorageKey(category, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s/%d-%s%s", category, time.Now().UnixMilli(), uuid.New(), ext)
}
