// Package surface extracts the public API surface of Swift source files
// into a condensed textual code map.
package surface

import "strings"

// Kind identifies which scanner produced a declaration.
type Kind string

const (
	KindImport    Kind = "import"
	KindProtocol  Kind = "protocol"
	KindType      Kind = "type"
	KindFunction  Kind = "function"
	KindExtension Kind = "extension"
)

// Declaration is one extracted interface element: an import line, a free
// function signature, or a braced block (protocol, type, extension) with its
// member lines. Lines are pre-rendered for output; members carry one level
// of indentation.
type Declaration struct {
	Kind Kind
	Name string
	// Lines holds the rendered output lines for this declaration, in order.
	Lines []string
}

// Text renders the declaration as a single block of text.
func (d Declaration) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Surface groups everything extracted from one source file, in the order the
// groups appear in the rendered code map.
type Surface struct {
	Imports    []Declaration
	Protocols  []Declaration
	Types      []Declaration
	Functions  []Declaration
	Extensions []Declaration
}

// Empty reports whether no scanner found anything.
func (s Surface) Empty() bool {
	return s.Count() == 0
}

// Count returns the total number of declarations across all groups.
func (s Surface) Count() int {
	return len(s.Imports) + len(s.Protocols) + len(s.Types) + len(s.Functions) + len(s.Extensions)
}
