package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mwalczak/clipmark"
)

// Compile-time interface verification.
var _ clipmark.ClipStore = (*ClipStore)(nil)

// ClipStore implements clipmark.ClipStore using SQLite.
type ClipStore struct {
	db *DB
}

// NewClipStore creates a new ClipStore.
func NewClipStore(db *DB) *ClipStore {
	return &ClipStore{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateClip saves a new clip, assigning its ID, hash and timestamp.
func (s *ClipStore) CreateClip(ctx context.Context, clip *clipmark.Clip) error {
	if err := clip.Validate(); err != nil {
		return err
	}

	clip.ID = uuid.New().String()
	clip.CreatedAt = time.Now().UTC()
	clip.ContentHash = hashContent(clip.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clips (id, source_url, title, content, content_hash, note_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, clip.ID, clip.SourceURL, clip.Title, clip.Content, clip.ContentHash,
		clip.NotePath, clip.CreatedAt.Format(time.RFC3339))

	return err
}

// FindClipByID retrieves a clip by ID.
func (s *ClipStore) FindClipByID(ctx context.Context, id string) (*clipmark.Clip, error) {
	var clip clipmark.Clip
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, note_path, created_at
		FROM clips
		WHERE id = ?
	`, id).Scan(&clip.ID, &clip.SourceURL, &clip.Title, &clip.Content,
		&clip.ContentHash, &clip.NotePath, &createdAt)

	if err == sql.ErrNoRows {
		return nil, clipmark.Errorf(clipmark.ENOTFOUND, "clip not found")
	}
	if err != nil {
		return nil, err
	}

	clip.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &clip, nil
}

// FindClips retrieves clips matching the filter, newest first.
func (s *ClipStore) FindClips(ctx context.Context, filter clipmark.ClipFilter) ([]*clipmark.Clip, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, content, content_hash, note_path, created_at FROM clips WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clips []*clipmark.Clip
	for rows.Next() {
		var clip clipmark.Clip
		var createdAt string

		if err := rows.Scan(&clip.ID, &clip.SourceURL, &clip.Title, &clip.Content,
			&clip.ContentHash, &clip.NotePath, &createdAt); err != nil {
			return nil, err
		}

		clip.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		clips = append(clips, &clip)
	}

	return clips, rows.Err()
}

// DeleteClip permanently removes a clip.
func (s *ClipStore) DeleteClip(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM clips WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return clipmark.Errorf(clipmark.ENOTFOUND, "clip not found")
	}

	return nil
}
