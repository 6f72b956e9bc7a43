package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/novelgrab/novelgrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestMain returns a Main backed by a database in a temp directory.
func newTestMain(t *testing.T) *Main {
	t.Helper()

	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "novelgrab.db")
	return m
}

func TestMain_NoCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)

	err := m.Run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "scrape")
	assert.Contains(t, stdout.String(), "crawl")
}

func TestMain_ListEmptyArchive(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)

	err := m.Run(context.Background(), []string{"list"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No chapters archived")
}

func TestMain_DeleteUnknownChapter(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)

	err := m.Run(context.Background(), []string{"delete", "no-such-id"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, novelgrab.ENOTFOUND, novelgrab.ErrorCode(err))
}

func TestMain_ScrapeUnknownEngine(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := newTestMain(t)

	err := m.Run(context.Background(), []string{"scrape", "--engine", "regex", "https://www.69shu.com/txt/1/2.html"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, novelgrab.EINVALID, novelgrab.ErrorCode(err))
}

func TestNewPipeline_Engines(t *testing.T) {
	t.Parallel()

	for _, engine := range []string{"selector", "readability", "trafilatura"} {
		p, err := newPipeline(engine, discardLogger())
		require.NoError(t, err, engine)
		assert.NotNil(t, p)
	}
}
