package surface

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for file discovery:
// - Source patterns select files, ignore patterns remove them
// - Files in the walk root match **/-prefixed patterns too
// - The .swiftmap directory is always ignored
// - Results come back as full paths in sorted order
// - Invalid glob patterns fail construction with a wrapped error
// - shouldIgnore also recognizes directory paths for pruning

func TestFileDiscovery_MatchesAndIgnores(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "Root.swift"), "struct Root {}\n")
	writeFixture(t, filepath.Join(dir, "Sources", "App.swift"), "struct App {}\n")
	writeFixture(t, filepath.Join(dir, "Pods", "Dep.swift"), "struct Dep {}\n")
	writeFixture(t, filepath.Join(dir, ".build", "Gen.swift"), "struct Gen {}\n")
	writeFixture(t, filepath.Join(dir, "Notes.md"), "# notes\n")

	fd, err := NewFileDiscovery(dir, []string{"**/*.swift"}, []string{"Pods/**", ".build/**"})
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "Root.swift"),
		filepath.Join(dir, "Sources", "App.swift"),
	}, files)
}

func TestFileDiscovery_RootFileMatchesDoubleStarPattern(t *testing.T) {
	t.Parallel()

	// Test: "**/*.swift" also matches files with no directory prefix
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "App.swift"), "struct App {}\n")

	fd, err := NewFileDiscovery(dir, []string{"**/*.swift"}, nil)
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "App.swift")}, files)
}

func TestFileDiscovery_SwiftmapDirAlwaysIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, ".swiftmap", "Cache.swift"), "struct Cache {}\n")
	writeFixture(t, filepath.Join(dir, "Real.swift"), "struct Real {}\n")

	fd, err := NewFileDiscovery(dir, []string{"**/*.swift"}, nil)
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "Real.swift")}, files)
}

func TestFileDiscovery_SortedFullPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "c.swift"), "struct C {}\n")
	writeFixture(t, filepath.Join(dir, "a", "b.swift"), "struct B {}\n")
	writeFixture(t, filepath.Join(dir, "b.swift"), "struct B2 {}\n")

	fd, err := NewFileDiscovery(dir, []string{"**/*.swift"}, nil)
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a", "b.swift"),
		filepath.Join(dir, "b.swift"),
		filepath.Join(dir, "c.swift"),
	}, files)
}

func TestFileDiscovery_InvalidPatterns(t *testing.T) {
	t.Parallel()

	_, err := NewFileDiscovery(t.TempDir(), []string{"["}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid source pattern "["`)

	_, err = NewFileDiscovery(t.TempDir(), []string{"**/*.swift"}, []string{"["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid ignore pattern "["`)
}

func TestFileDiscovery_ShouldIgnoreDirectoryPaths(t *testing.T) {
	t.Parallel()

	fd, err := NewFileDiscovery(t.TempDir(), []string{"**/*.swift"}, []string{"Pods/**"})
	require.NoError(t, err)

	// Test: a bare directory path matches its /**-suffixed ignore pattern
	assert.True(t, fd.shouldIgnore("Pods"))
	assert.True(t, fd.shouldIgnore("Pods/Alamofire/Source.swift"))
	assert.False(t, fd.shouldIgnore("Sources/App.swift"))
	assert.True(t, fd.shouldIgnore(".swiftmap"))
	assert.True(t, fd.shouldIgnore(".swiftmap/report.txt"))
}
