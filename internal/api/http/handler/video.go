package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
	"github.com/mediatone/mediatone-server/internal/service"
)

// multipartMemoryLimit caps the in-memory part of a multipart parse;
// larger bodies spool to temporary files.
const multipartMemoryLimit = 32 << 20

// VideoService defines media item lifecycle operations.
type VideoService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, params service.UploadParams) (model.Video, error)
	Get(ctx context.Context, id int64) (model.Video, error)
	List(ctx context.Context, page, limit int) ([]model.Video, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Video, error)
	Delete(ctx context.Context, callerID uuid.UUID, id int64) error
}

// Video handles HTTP endpoints for media items.
type Video struct {
	videoService   VideoService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewVideo creates a new Video handler.
func NewVideo(videoService VideoService, contextManager model.ContextManager, logger *logger.Logger) *Video {
	return &Video{
		videoService:   videoService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Upload accepts a multipart form with the media file in the "video"
// field plus title and description fields, and responds with the created
// item.
func (h *Video) Upload(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		handleError(w, fmt.Errorf("%w: malformed multipart form", model.ErrInvalidInput))
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		handleError(w, fmt.Errorf("%w: video file is required", model.ErrInvalidInput))
		return
	}
	defer file.Close()

	h.logger.Debug("Video handler: processing upload",
		"user_id", identity.ID,
		"filename", header.Filename,
		"size", header.Size)

	video, err := h.videoService.Upload(r.Context(), identity.ID, service.UploadParams{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		h.logger.Error("Video handler: upload failed",
			"user_id", identity.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Video handler: upload completed",
		"user_id", identity.ID,
		"video_id", video.ID)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "video uploaded",
		"video":   toVideoPayload(video),
	})
}

// List returns ready media items, newest first, with a pagination
// envelope. Page and limit come from query parameters.
func (h *Video) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(r, "limit", service.DefaultPageSize)
	if limit < 1 {
		limit = service.DefaultPageSize
	}
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	videos, err := h.videoService.List(r.Context(), page, limit)
	if err != nil {
		h.logger.Error("Video handler: listing failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	payloads := toVideoPayloads(videos)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"videos":  payloads,
		"pagination": pagination{
			Page:  page,
			Limit: limit,
			Total: len(payloads),
		},
	})
}

// Get returns a single media item by id and counts the view.
func (h *Video) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handleError(w, fmt.Errorf("%w: malformed video id", model.ErrInvalidInput))
		return
	}

	video, err := h.videoService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"video":   toVideoPayload(video),
	})
}

// ListByUser returns all media items owned by the given user.
func (h *Video) ListByUser(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handleError(w, fmt.Errorf("%w: malformed user id", model.ErrInvalidInput))
		return
	}

	videos, err := h.videoService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"videos":  toVideoPayloads(videos),
	})
}

// Delete removes one of the caller's media items.
func (h *Video) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handleError(w, fmt.Errorf("%w: malformed video id", model.ErrInvalidInput))
		return
	}

	if err := h.videoService.Delete(r.Context(), identity.ID, id); err != nil {
		h.logger.Error("Video handler: deletion failed",
			"user_id", identity.ID,
			"video_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Video handler: video deleted",
		"user_id", identity.ID,
		"video_id", id)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "video deleted",
	})
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
