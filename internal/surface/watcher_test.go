package surface

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the report watcher:
// - Events on directly watched files always qualify
// - Events under a watched directory qualify only when the path matches the
//   source patterns and is not ignored
// - Only write, create, and remove operations qualify
// - Directory candidates are pruned through the ignore rules
// - Start followed by Stop shuts down cleanly

func TestReportWatcher_ShouldProcessEvent_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "Config.swift")
	writeFixture(t, file, "struct Config {}\n")

	rw, err := NewReportWatcher([]string{file}, nil, nil, func() error { return nil })
	require.NoError(t, err)
	rw.Start(context.Background())
	defer rw.Stop()

	// Test: the watched file qualifies regardless of patterns
	assert.True(t, rw.shouldProcessEvent(fsnotify.Event{Name: file, Op: fsnotify.Write}))
	assert.True(t, rw.shouldProcessEvent(fsnotify.Event{Name: file, Op: fsnotify.Remove}))

	// Test: operation mask rejects attribute-only events
	assert.False(t, rw.shouldProcessEvent(fsnotify.Event{Name: file, Op: fsnotify.Chmod}))

	// Test: a sibling file is not watched
	sibling := filepath.Join(dir, "Other.swift")
	assert.False(t, rw.shouldProcessEvent(fsnotify.Event{Name: sibling, Op: fsnotify.Write}))
}

func TestReportWatcher_ShouldProcessEvent_DirectoryPatterns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "App.swift"), "struct App {}\n")

	rw, err := NewReportWatcher([]string{dir}, []string{"**/*.swift"}, []string{"Pods/**"}, func() error { return nil })
	require.NoError(t, err)
	rw.Start(context.Background())
	defer rw.Stop()

	assert.True(t, rw.shouldProcessEvent(fsnotify.Event{Name: filepath.Join(dir, "App.swift"), Op: fsnotify.Write}))
	assert.True(t, rw.shouldProcessEvent(fsnotify.Event{Name: filepath.Join(dir, "Sources", "New.swift"), Op: fsnotify.Create}))
	assert.False(t, rw.shouldProcessEvent(fsnotify.Event{Name: filepath.Join(dir, "Pods", "Dep.swift"), Op: fsnotify.Write}))
	assert.False(t, rw.shouldProcessEvent(fsnotify.Event{Name: filepath.Join(dir, "README.md"), Op: fsnotify.Write}))
	assert.False(t, rw.shouldProcessEvent(fsnotify.Event{Name: "/elsewhere/App.swift", Op: fsnotify.Write}))
}

func TestReportWatcher_ShouldWatchDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "App.swift"), "struct App {}\n")

	rw, err := NewReportWatcher([]string{dir}, []string{"**/*.swift"}, []string{"Pods/**"}, func() error { return nil })
	require.NoError(t, err)
	rw.Start(context.Background())
	defer rw.Stop()

	require.Len(t, rw.dirs, 1)
	wd := rw.dirs[0]

	assert.True(t, rw.shouldWatchDirectory(wd, filepath.Join(dir, "Sources")))
	assert.False(t, rw.shouldWatchDirectory(wd, filepath.Join(dir, "Pods")))
	assert.False(t, rw.shouldWatchDirectory(wd, "/elsewhere"))
}

func TestReportWatcher_MissingInputIsSkipped(t *testing.T) {
	t.Parallel()

	rw, err := NewReportWatcher([]string{filepath.Join(t.TempDir(), "gone")}, nil, nil, func() error { return nil })
	require.NoError(t, err)
	rw.Start(context.Background())
	defer rw.Stop()

	assert.Empty(t, rw.dirs)
	assert.Empty(t, rw.files)
}
