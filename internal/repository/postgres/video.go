package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mediatone/mediatone-server/internal/model"
)

var _ model.VideoStore = (*VideoRepository)(nil)

type VideoRepository struct {
	db *Connection
}

func NewVideoRepository(db *Connection) *VideoRepository {
	return &VideoRepository{
		db: db,
	}
}

const videoColumns = `id, owner_id, title, description, storage_key, storage_url,
	original_filename, file_size_bytes, duration_seconds, status, view_count, created_at, updated_at`

func (r *VideoRepository) Create(ctx context.Context, params model.CreateVideoParams) (model.Video, error) {
	status := params.Status
	if status == "" {
		status = model.VideoStatusUploading
	}

	query := `INSERT INTO videos (owner_id, title, description, storage_key, storage_url,
				original_filename, file_size_bytes, duration_seconds, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + videoColumns

	video, err := r.scanVideo(r.db.QueryRow(ctx, query,
		params.OwnerID, params.Title, params.Description, params.StorageKey, params.StorageURL,
		params.OriginalFilename, params.FileSizeBytes, params.DurationSeconds, status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Video{}, fmt.Errorf("%w: %s", model.ErrDuplicate, pgErr.ConstraintName)
		}
		return model.Video{}, fmt.Errorf("failed to create video: %w", err)
	}

	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	video, err := r.scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Video{}, model.ErrNotFound
		}
		return model.Video{}, fmt.Errorf("failed to get video by id: %w", err)
	}

	return video, nil
}

func (r *VideoRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos by owner: %w", err)
	}
	defer rows.Close()

	return r.collectVideos(rows)
}

func (r *VideoRepository) ListReady(ctx context.Context, limit, offset int) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos
			  WHERE status = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, model.VideoStatusReady, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ready videos: %w", err)
	}
	defer rows.Close()

	return r.collectVideos(rows)
}

func (r *VideoRepository) UpdateStatus(ctx context.Context, id int64, status model.VideoStatus) error {
	query := `UPDATE videos SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update video status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id int64) error {
	query := `UPDATE videos SET view_count = view_count + 1, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) DeleteByOwner(ctx context.Context, id int64, ownerID uuid.UUID) (bool, error) {
	query := `DELETE FROM videos WHERE id = $1 AND owner_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete video: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *VideoRepository) scanVideo(row pgx.Row) (model.Video, error) {
	var video model.Video
	err := row.Scan(
		&video.ID, &video.OwnerID, &video.Title, &video.Description, &video.StorageKey,
		&video.StorageURL, &video.OriginalFilename, &video.FileSizeBytes, &video.DurationSeconds,
		&video.Status, &video.ViewCount, &video.CreatedAt, &video.UpdatedAt,
	)
	if err != nil {
		return model.Video{}, err
	}
	return video, nil
}

func (r *VideoRepository) collectVideos(rows pgx.Rows) ([]model.Video, error) {
	var videos []model.Video
	for rows.Next() {
		video, err := r.scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read video rows: %w", err)
	}
	return videos, nil
}
