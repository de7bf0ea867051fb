package surface

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the MCP tool handlers:
// - swift_surface_map returns the report text for files and directories
// - Relative paths resolve against the configured root
// - Missing or malformed arguments produce error results, not errors
// - A path with no Swift files produces an error result
// - swift_surface_files returns the discovered file list as JSON, honoring
//   the optional root argument and tolerating absent arguments

func surfaceMapRequest(args interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "swift_surface_map",
			Arguments: args,
		},
	}
}

func TestCreateSurfaceMapToolHandler_FileMap(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "Session.swift"), `struct Session {
    let id: String
}`)

	reporter := NewReporter(fixedGenerator(), []string{"**/*.swift"}, nil, nil)
	handler := CreateSurfaceMapToolHandler(reporter, root)

	result, err := handler(context.Background(), surfaceMapRequest(map[string]interface{}{
		"path": "Session.swift",
	}))

	require.NoError(t, err)
	require.NotNil(t, result)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent")
	assert.Contains(t, textContent.Text, "// Swift API Surface Map for: "+filepath.Join(root, "Session.swift"))
	assert.Contains(t, textContent.Text, "struct Session {")
}

func TestCreateSurfaceMapToolHandler_DirectoryMap(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "Sources", "App.swift"), "struct App {}\n")

	reporter := NewReporter(fixedGenerator(), []string{"**/*.swift"}, nil, nil)
	handler := CreateSurfaceMapToolHandler(reporter, root)

	result, err := handler(context.Background(), surfaceMapRequest(map[string]interface{}{
		"path": "Sources",
	}))

	require.NoError(t, err)
	require.False(t, result.IsError)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, textContent.Text, "// Swift API Surface Map for directory: ")
	assert.Contains(t, textContent.Text, "// Found 1 Swift files")
}

func TestCreateSurfaceMapToolHandler_MissingPath(t *testing.T) {
	t.Parallel()

	reporter := NewReporter(fixedGenerator(), []string{"**/*.swift"}, nil, nil)
	handler := CreateSurfaceMapToolHandler(reporter, t.TempDir())

	result, err := handler(context.Background(), surfaceMapRequest(map[string]interface{}{}))

	require.NoError(t, err)
	require.NotNil(t, result)
	require.True(t, result.IsError)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, textContent.Text, "path field is required")
}

func TestCreateSurfaceMapToolHandler_InvalidArguments(t *testing.T) {
	t.Parallel()

	reporter := NewReporter(fixedGenerator(), []string{"**/*.swift"}, nil, nil)
	handler := CreateSurfaceMapToolHandler(reporter, t.TempDir())

	result, err := handler(context.Background(), surfaceMapRequest("not a map"))

	require.NoError(t, err)
	require.True(t, result.IsError)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, textContent.Text, "invalid arguments format")
}

func TestCreateSurfaceMapToolHandler_NoSwiftFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	reporter := NewReporter(fixedGenerator(), []string{"**/*.swift"}, nil, nil)
	handler := CreateSurfaceMapToolHandler(reporter, root)

	result, err := handler(context.Background(), surfaceMapRequest(map[string]interface{}{
		"path": ".",
	}))

	require.NoError(t, err)
	require.True(t, result.IsError)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, textContent.Text, "no Swift files found at")
}

func TestCreateSurfaceFilesToolHandler_DefaultRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	a := filepath.Join(root, "A.swift")
	b := filepath.Join(root, "Sub", "B.swift")
	writeFixture(t, a, "struct A {}\n")
	writeFixture(t, b, "struct B {}\n")

	handler := CreateSurfaceFilesToolHandler(root, []string{"**/*.swift"}, nil)

	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "swift_surface_files"},
	})

	require.NoError(t, err)
	require.False(t, result.IsError)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var listing struct {
		Root  string   `json:"root"`
		Count int      `json:"count"`
		Files []string `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent.Text), &listing))
	assert.Equal(t, root, listing.Root)
	assert.Equal(t, 2, listing.Count)
	assert.Equal(t, []string{a, b}, listing.Files)
}

func TestCreateSurfaceFilesToolHandler_RelativeRootArgument(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "A.swift"), "struct A {}\n")
	writeFixture(t, filepath.Join(root, "Sub", "B.swift"), "struct B {}\n")

	handler := CreateSurfaceFilesToolHandler(root, []string{"**/*.swift"}, nil)

	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "swift_surface_files",
			Arguments: map[string]interface{}{"root": "Sub"},
		},
	})

	require.NoError(t, err)
	require.False(t, result.IsError)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var listing struct {
		Root  string   `json:"root"`
		Count int      `json:"count"`
		Files []string `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent.Text), &listing))
	assert.Equal(t, filepath.Join(root, "Sub"), listing.Root)
	assert.Equal(t, 1, listing.Count)
}
