package surface

import (
	"strings"
	"time"
)

// timestampLayout is the format of the banner timestamps in generated maps.
const timestampLayout = "2006-01-02 15:04:05"

// Generator renders scanned surfaces into code map text. Now supplies the
// banner timestamp and can be replaced in tests for stable golden output.
type Generator struct {
	Now func() time.Time
}

// NewGenerator returns a Generator stamping maps with the wall clock.
func NewGenerator() *Generator {
	return &Generator{Now: time.Now}
}

// CodeMap scans one file's source text and renders its code map.
func (g *Generator) CodeMap(source string) string {
	return g.Render(Scan(source))
}

// Render assembles a surface into code map text: a timestamp header, then
// the import, protocol, type, free-function, and extension groups in that
// order. Each non-empty group is followed by a blank line, except the
// extension group which closes the map.
func (g *Generator) Render(s Surface) string {
	components := []string{"// Generated: " + g.timestamp(), ""}

	if len(s.Imports) > 0 {
		components = appendGroup(components, s.Imports)
		components = append(components, "")
	}
	if len(s.Protocols) > 0 {
		components = appendGroup(components, s.Protocols)
		components = append(components, "")
	}
	if len(s.Types) > 0 {
		components = appendGroup(components, s.Types)
		components = append(components, "")
	}
	if len(s.Functions) > 0 {
		components = appendGroup(components, s.Functions)
		components = append(components, "")
	}
	if len(s.Extensions) > 0 {
		components = appendGroup(components, s.Extensions)
	}

	return strings.Join(components, "\n")
}

func (g *Generator) timestamp() string {
	now := g.Now
	if now == nil {
		now = time.Now
	}
	return now().Format(timestampLayout)
}

// appendGroup appends each declaration as one component; multi-line blocks
// stay contiguous with no blank line between declarations of the same group.
func appendGroup(components []string, decls []Declaration) []string {
	for _, d := range decls {
		components = append(components, d.Text())
	}
	return components
}
