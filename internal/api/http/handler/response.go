package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mediatone/mediatone-server/internal/model"
)

// userPayload is the wire shape of a user. Empty email is omitted so
// public profiles never carry the field.
type userPayload struct {
	ID                uuid.UUID  `json:"id"`
	Username          string     `json:"username"`
	Email             string     `json:"email,omitempty"`
	Role              model.Role `json:"role"`
	Bio               string     `json:"bio"`
	ProfilePictureKey string     `json:"profile_picture_key,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toUserPayload(user model.User) userPayload {
	return userPayload{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		Role:              user.Role,
		Bio:               user.Bio,
		ProfilePictureKey: user.ProfilePictureKey,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

// videoPayload is the wire shape of a media item.
type videoPayload struct {
	ID               int64             `json:"id"`
	OwnerID          uuid.UUID         `json:"owner_id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	URL              string            `json:"url"`
	OriginalFilename string            `json:"original_filename"`
	FileSizeBytes    int64             `json:"file_size_bytes"`
	DurationSeconds  *float64          `json:"duration_seconds,omitempty"`
	Status           model.VideoStatus `json:"status"`
	ViewCount        int64             `json:"view_count"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func toVideoPayload(video model.Video) videoPayload {
	return videoPayload{
		ID:               video.ID,
		OwnerID:          video.OwnerID,
		Title:            video.Title,
		Description:      video.Description,
		URL:              video.StorageURL,
		OriginalFilename: video.OriginalFilename,
		FileSizeBytes:    video.FileSizeBytes,
		DurationSeconds:  video.DurationSeconds,
		Status:           video.Status,
		ViewCount:        video.ViewCount,
		CreatedAt:        video.CreatedAt,
		UpdatedAt:        video.UpdatedAt,
	}
}

func toVideoPayloads(videos []model.Video) []videoPayload {
	payloads := make([]videoPayload, 0, len(videos))
	for _, video := range videos {
		payloads = append(payloads, toVideoPayload(video))
	}
	return payloads
}

// pagination describes the page window of a listing response. Total is
// the number of items on this page, not the collection size.
type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
