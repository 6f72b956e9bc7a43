package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	t.Run("uses the chapter title", func(t *testing.T) {
		t.Parallel()

		name := fs.FileName(&novelgrab.Chapter{Title: "第一章 雪夜"})
		assert.Equal(t, "第一章 雪夜.txt", name)
	})

	t.Run("replaces unsafe characters", func(t *testing.T) {
		t.Parallel()

		name := fs.FileName(&novelgrab.Chapter{Title: "第一章:上/下"})
		assert.Equal(t, "第一章_上_下.txt", name)
	})

	t.Run("falls back to the URL path segment", func(t *testing.T) {
		t.Parallel()

		name := fs.FileName(&novelgrab.Chapter{URL: "https://www.69shu.com/txt/1/2.html"})
		assert.Equal(t, "2.txt", name)
	})

	t.Run("falls back to the chapter id", func(t *testing.T) {
		t.Parallel()

		name := fs.FileName(&novelgrab.Chapter{ID: "abc-123"})
		assert.Equal(t, "abc-123.txt", name)
	})
}

func TestWriter_WriteChapter(t *testing.T) {
	t.Parallel()

	t.Run("writes title and content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		chapter := &novelgrab.Chapter{
			URL:     "https://www.69shu.com/txt/1/2.html",
			Title:   "第一章",
			Content: "夜色渐深。",
		}
		path, err := w.WriteChapter(chapter)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "第一章.txt"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "第一章\n\n夜色渐深。\n", string(data))
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out", "book")
		w := fs.NewWriter(dir)

		chapter := &novelgrab.Chapter{URL: "https://example.com/1.html", Title: "x", Content: "y"}
		_, err := w.WriteChapter(chapter)
		require.NoError(t, err)
	})

	t.Run("rejects invalid chapters", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		_, err := w.WriteChapter(&novelgrab.Chapter{Title: "no content"})
		require.Error(t, err)
		assert.Equal(t, novelgrab.EINVALID, novelgrab.ErrorCode(err))
	})
}
