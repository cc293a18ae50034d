package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mediatone/mediatone-server/internal/model"
)

var _ model.VideoStore = (*VideoStore)(nil)

// VideoStore keeps media items in a map guarded by a mutex. Identifiers
// come from a single atomic counter so concurrent creates never reuse or
// skip an id.
type VideoStore struct {
	mu     sync.RWMutex
	videos map[int64]model.Video
	nextID atomic.Int64
}

// NewVideoStore creates an empty in-memory video store.
func NewVideoStore() *VideoStore {
	return &VideoStore{videos: make(map[int64]model.Video)}
}

func (s *VideoStore) Create(_ context.Context, params model.CreateVideoParams) (model.Video, error) {
	id := s.nextID.Add(1)
	now := time.Now()

	status := params.Status
	if status == "" {
		status = model.VideoStatusUploading
	}

	video := model.Video{
		ID:               id,
		OwnerID:          params.OwnerID,
		Title:            params.Title,
		Description:      params.Description,
		StorageKey:       params.StorageKey,
		StorageURL:       params.StorageURL,
		OriginalFilename: params.OriginalFilename,
		FileSizeBytes:    params.FileSizeBytes,
		DurationSeconds:  params.DurationSeconds,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	s.mu.Lock()
	s.videos[id] = video
	s.mu.Unlock()

	return video, nil
}

func (s *VideoStore) GetByID(_ context.Context, id int64) (model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	video, ok := s.videos[id]
	if !ok {
		return model.Video{}, model.ErrNotFound
	}
	return video, nil
}

func (s *VideoStore) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var videos []model.Video
	for _, v := range s.videos {
		if v.OwnerID == ownerID {
			videos = append(videos, v)
		}
	}
	sortNewestFirst(videos)
	return videos, nil
}

func (s *VideoStore) ListReady(_ context.Context, limit, offset int) ([]model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ready []model.Video
	for _, v := range s.videos {
		if v.Status == model.VideoStatusReady {
			ready = append(ready, v)
		}
	}
	sortNewestFirst(ready)

	if offset >= len(ready) {
		return nil, nil
	}
	ready = ready[offset:]
	if limit > 0 && limit < len(ready) {
		ready = ready[:limit]
	}
	return ready, nil
}

func (s *VideoStore) UpdateStatus(_ context.Context, id int64, status model.VideoStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok {
		return model.ErrNotFound
	}
	video.Status = status
	video.UpdatedAt = time.Now()
	s.videos[id] = video
	return nil
}

func (s *VideoStore) IncrementViews(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok {
		return model.ErrNotFound
	}
	video.ViewCount++
	video.UpdatedAt = time.Now()
	s.videos[id] = video
	return nil
}

func (s *VideoStore) DeleteByOwner(_ context.Context, id int64, ownerID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok || video.OwnerID != ownerID {
		return false, nil
	}
	delete(s.videos, id)
	return true, nil
}

// sortNewestFirst orders by creation time, newest first, falling back to
// the id so items created in the same instant keep a stable order.
func sortNewestFirst(videos []model.Video) {
	sort.Slice(videos, func(i, j int) bool {
		if videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].ID > videos[j].ID
		}
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
}
