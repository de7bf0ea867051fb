package surface

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReportWatcher watches the input paths for Swift file changes and rebuilds
// the report after changes settle.
type ReportWatcher struct {
	rebuild      func() error
	watcher      *fsnotify.Watcher
	dirs         []watchedDir
	files        map[string]bool
	debounceTime time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// watchedDir is one directory input with the discovery rules used to filter
// events under it.
type watchedDir struct {
	root      string
	discovery *FileDiscovery
}

// NewReportWatcher creates a watcher over the given input paths. Directories
// are watched recursively with events filtered through the same source and
// ignore patterns used for discovery; file paths are watched through their
// parent directory so editors that replace files on save are still seen.
// rebuild runs once per settled batch of changes.
func NewReportWatcher(paths, sourcePatterns, ignorePatterns []string, rebuild func() error) (*ReportWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	rw := &ReportWatcher{
		rebuild:      rebuild,
		watcher:      watcher,
		files:        make(map[string]bool),
		debounceTime: 500 * time.Millisecond,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("Warning: cannot watch %s: %v", path, err)
			continue
		}

		if !info.IsDir() {
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				watcher.Close()
				return nil, err
			}
			rw.files[filepath.Clean(path)] = true
			continue
		}

		discovery, err := NewFileDiscovery(path, sourcePatterns, ignorePatterns)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		wd := watchedDir{root: path, discovery: discovery}
		rw.dirs = append(rw.dirs, wd)
		if err := rw.addDirectoriesRecursively(wd, path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	return rw, nil
}

// Start begins watching for file changes.
func (rw *ReportWatcher) Start(ctx context.Context) {
	go rw.watch(ctx)
}

// Stop stops the file watcher.
func (rw *ReportWatcher) Stop() {
	rw.stopOnce.Do(func() {
		close(rw.stopCh)
		<-rw.doneCh // Wait for goroutine to finish
		rw.watcher.Close()
	})
}

// watch is the main event loop with debouncing logic.
func (rw *ReportWatcher) watch(ctx context.Context) {
	defer close(rw.doneCh)

	var debounceTimer *time.Timer
	rebuildCh := make(chan struct{}, 1)
	changedFiles := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-rw.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-rw.watcher.Events:
			if !ok {
				return
			}

			if !rw.shouldProcessEvent(event) {
				continue
			}

			changedFiles[event.Name] = true

			// New directories must be added to the watcher as they appear
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					for _, wd := range rw.dirs {
						if rw.shouldWatchDirectory(wd, event.Name) {
							if err := rw.addDirectoriesRecursively(wd, event.Name); err != nil {
								log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
							}
						}
					}
				}
			}

			// Reset debounce timer - properly stop and drain
			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}

			debounceTimer = time.AfterFunc(rw.debounceTime, func() {
				select {
				case rebuildCh <- struct{}{}:
				default:
				}
			})

		case <-rebuildCh:
			rw.triggerRebuild(changedFiles)
			changedFiles = make(map[string]bool)

		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// triggerRebuild regenerates the report once for a settled batch of changes.
func (rw *ReportWatcher) triggerRebuild(changedFiles map[string]bool) {
	if len(changedFiles) == 0 {
		return
	}

	log.Printf("Regenerating surface map after changes in %d file(s)...", len(changedFiles))
	start := time.Now()

	if err := rw.rebuild(); err != nil {
		log.Printf("Error regenerating surface map: %v", err)
		return
	}

	log.Printf("Surface map updated in %v", time.Since(start))
}

// shouldProcessEvent checks if an event should trigger a rebuild.
func (rw *ReportWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	// Only care about WRITE, CREATE, and REMOVE events
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}

	// Directly watched single files
	if rw.files[filepath.Clean(event.Name)] {
		return true
	}

	// A directory event must match the source patterns of the input it
	// belongs to, and not be ignored
	for _, wd := range rw.dirs {
		relPath, err := filepath.Rel(wd.root, event.Name)
		if err != nil || strings.HasPrefix(relPath, "..") {
			continue
		}
		relPath = filepath.ToSlash(relPath)

		if wd.discovery.shouldIgnore(relPath) {
			continue
		}
		if wd.discovery.matchesAnyPattern(relPath, wd.discovery.sourcePatterns) {
			return true
		}
	}

	return false
}

// shouldWatchDirectory checks if a directory should be watched for wd.
func (rw *ReportWatcher) shouldWatchDirectory(wd watchedDir, path string) bool {
	relPath, err := filepath.Rel(wd.root, path)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return false
	}

	relPath = filepath.ToSlash(relPath)
	return !wd.discovery.shouldIgnore(relPath)
}

// addDirectoriesRecursively adds all directories in the tree to the watcher.
func (rw *ReportWatcher) addDirectoriesRecursively(wd watchedDir, rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Log but continue - don't fail the entire watch for one directory
			log.Printf("Warning: error accessing %s: %v", path, err)
			return nil
		}

		if !info.IsDir() {
			return nil
		}

		if !rw.shouldWatchDirectory(wd, path) {
			return filepath.SkipDir
		}

		if err := rw.watcher.Add(path); err != nil {
			log.Printf("Warning: failed to watch directory %s: %v", path, err)
			return nil // Continue anyway
		}

		return nil
	})
}
