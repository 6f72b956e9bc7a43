package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/novelgrab/novelgrab"
)

// Compile-time interface verification.
var _ novelgrab.ChapterService = (*ChapterService)(nil)

// ChapterService implements novelgrab.ChapterService using SQLite.
type ChapterService struct {
	db *DB
}

// NewChapterService creates a new ChapterService.
func NewChapterService(db *DB) *ChapterService {
	return &ChapterService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateChapter stores a chapter, assigning its ID and content hash.
func (s *ChapterService) CreateChapter(ctx context.Context, chapter *novelgrab.Chapter) error {
	if err := chapter.Validate(); err != nil {
		return err
	}

	chapter.ID = uuid.New().String()
	chapter.ContentHash = hashContent(chapter.Content)
	if chapter.ExtractedAt.IsZero() {
		chapter.ExtractedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chapters (id, url, title, content, word_count, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, chapter.ID, chapter.URL, chapter.Title, chapter.Content, chapter.WordCount,
		chapter.ContentHash, chapter.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindChapterByURL retrieves the most recently stored chapter for a URL.
func (s *ChapterService) FindChapterByURL(ctx context.Context, url string) (*novelgrab.Chapter, error) {
	var chapter novelgrab.Chapter
	var extractedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, content, word_count, content_hash, extracted_at
		FROM chapters
		WHERE url = ?
		ORDER BY extracted_at DESC
		LIMIT 1
	`, url).Scan(&chapter.ID, &chapter.URL, &chapter.Title, &chapter.Content,
		&chapter.WordCount, &chapter.ContentHash, &extractedAt)

	if err == sql.ErrNoRows {
		return nil, novelgrab.Errorf(novelgrab.ENOTFOUND, "chapter not found")
	}
	if err != nil {
		return nil, err
	}

	chapter.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
	}

	return &chapter, nil
}

// FindChapters retrieves chapters matching the filter, newest first.
func (s *ChapterService) FindChapters(ctx context.Context, filter novelgrab.ChapterFilter) ([]*novelgrab.Chapter, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, content, word_count, content_hash, extracted_at FROM chapters WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY extracted_at DESC")

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

	var chapters []*novelgrab.Chapter
	for rows.Next() {
		var chapter novelgrab.Chapter
		var extractedAt string

		if err := rows.Scan(&chapter.ID, &chapter.URL, &chapter.Title, &chapter.Content,
			&chapter.WordCount, &chapter.ContentHash, &extractedAt); err != nil {
			return nil, err
		}

		chapter.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
		}

		chapters = append(chapters, &chapter)
	}

	return chapters, rows.Err()
}

// DeleteChapter permanently removes a chapter.
func (s *ChapterService) DeleteChapter(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM chapters WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return novelgrab.Errorf(novelgrab.ENOTFOUND, "chapter not found")
	}

	return nil
}
