package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supafox/supafox/internal/logging"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestEventTypeOf(t *testing.T) {
	assert.Equal(t, EventTypeCreated, eventTypeOf(fsnotify.Create))
	assert.Equal(t, EventTypeModified, eventTypeOf(fsnotify.Write))
	assert.Equal(t, EventTypeDeleted, eventTypeOf(fsnotify.Remove))
	assert.Equal(t, EventTypeRenamed, eventTypeOf(fsnotify.Rename))
	assert.Equal(t, EventTypeModified, eventTypeOf(fsnotify.Chmod))
	assert.Equal(t, EventTypeCreated, eventTypeOf(fsnotify.Create|fsnotify.Write))
}

func TestFilters(t *testing.T) {
	tests := []struct {
		path    string
		content bool
		editor  bool
	}{
		{"legal/terms.mdx", true, true},
		{"legal/privacy.md", true, true},
		{"legal/PRIVACY.MD", true, true},
		{"legal/notes.txt", false, true},
		{"legal/.#terms.mdx", true, false},
		{"legal/terms.mdx~", false, false},
		{"legal/.terms.mdx.swp", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.content, ContentFilter(tt.path))
			assert.Equal(t, tt.editor, NoEditorFilter(tt.path))
		})
	}
}

func TestValidatePath(t *testing.T) {
	p, err := validatePath("data/content/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("data/content"), p)

	_, err = validatePath("../outside")
	assert.Error(t, err)

	_, err = validatePath("/abs/dir")
	assert.NoError(t, err)
}

func TestDebouncer(t *testing.T) {
	debouncer := newDebouncer(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go debouncer.start(ctx)

	debouncer.events <- ChangeEvent{Path: "b.mdx", Type: EventTypeCreated}
	debouncer.events <- ChangeEvent{Path: "b.mdx", Type: EventTypeModified}
	debouncer.events <- ChangeEvent{Path: "a.mdx", Type: EventTypeModified}

	select {
	case batch := <-debouncer.output:
		require.Len(t, batch, 2)
		assert.Equal(t, "a.mdx", batch[0].Path)
		assert.Equal(t, "b.mdx", batch[1].Path)
		assert.Equal(t, EventTypeModified, batch[1].Type)
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never flushed")
	}
}

func TestDebouncerFlushEmpty(t *testing.T) {
	debouncer := newDebouncer(time.Millisecond)
	debouncer.flush()
	assert.Empty(t, debouncer.output)
}

func TestFileWatcherReportsContentChanges(t *testing.T) {
	root := t.TempDir()
	legal := filepath.Join(root, "legal")
	require.NoError(t, os.MkdirAll(legal, 0o755))

	fw, err := NewFileWatcher(50*time.Millisecond, logging.NopLogger{})
	require.NoError(t, err)
	defer fw.Stop()

	fw.AddFilter(ContentFilter)
	fw.AddFilter(NoEditorFilter)

	var mu sync.Mutex
	var got []ChangeEvent
	done := make(chan struct{}, 8)
	fw.AddHandler(func(ctx context.Context, events []ChangeEvent) error {
		mu.Lock()
		got = append(got, events...)
		mu.Unlock()
		done <- struct{}{}
		return nil
	})

	require.NoError(t, fw.AddRecursive(root))
	assert.Contains(t, fw.WatchList(), legal)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(legal, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(legal, "terms.mdx"), []byte("---\ntitle: x\n---\n"), 0o644))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, got)
	for _, ev := range got {
		assert.Equal(t, ".mdx", filepath.Ext(ev.Path))
	}
}

func TestFileWatcherSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "objects"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "legal"), 0o755))

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Stop()

	require.NoError(t, fw.AddRecursive(root))
	list := fw.WatchList()
	assert.Contains(t, list, root)
	assert.Contains(t, list, filepath.Join(root, "legal"))
	assert.NotContains(t, list, filepath.Join(root, ".git"))
}

func TestFileWatcherStopIsIdempotent(t *testing.T) {
	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)

	assert.NoError(t, fw.Stop())
	assert.NoError(t, fw.Stop())
}

func TestAddRecursiveMissingRoot(t *testing.T) {
	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Stop()

	assert.Error(t, fw.AddRecursive(filepath.Join(t.TempDir(), "missing")))
}
