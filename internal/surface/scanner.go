package surface

import (
	"regexp"
	"strings"
)

// memberIndent is the indentation prefix for member lines inside a block.
const memberIndent = "    "

// Declaration headers and members are matched against whitespace-trimmed
// lines. The scan is line-oriented: brace depth is tracked by counting '{'
// and '}' per line, so braces inside string literals or comments are counted
// like any others.
var (
	importLinePattern = regexp.MustCompile(`(?m)^import\s+.*$`)

	protocolHeaderPattern = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+)?protocol\s+(\w+)(\s*:\s*[^{]+)?\s*\{`)
	protocolFuncPattern   = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(static\s+|class\s+)?func\s+([^{]+)`)
	protocolVarPattern    = regexp.MustCompile(`^(var|let)\s+(\w+)\s*:\s*([^{]+)`)

	typeHeaderPattern       = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+|open\s+)?(final\s+)?(class|struct|enum)\s+(\w+)(<[^>]+>)?(\s*:\s*[^{]+)?\s*\{`)
	storedPropertyPattern   = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+|open\s+)?(static\s+|class\s+)?(weak\s+|unowned\s+)?(var|let)\s+(\w+)\s*:\s*([^={\n]+)`)
	computedPropertyPattern = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+|open\s+)?(static\s+|class\s+)?var\s+(\w+)\s*:\s*([^{]+)\{`)
	memberFunctionPattern   = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+|open\s+)?((?:static\s+|class\s+|override\s+)*)((?:func|init|deinit)\b[^{]*)`)

	extensionHeaderPattern = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+)?extension\s+(\w+)(\s*:\s*[^{]+)?\s*\{`)
	extensionFuncPattern   = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+|open\s+)?(static\s+|class\s+)?func\s+([^{]+)`)
	extensionVarPattern    = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+|open\s+)?(static\s+|class\s+)?var\s+(\w+)\s*:\s*([^{]+)\s*\{`)

	// typeBoundaryPattern flags any type-like header, protocols included. It
	// deliberately requires no opening brace so that the free-function pass
	// flips its inside-a-type state on the header line itself.
	typeBoundaryPattern = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+|open\s+)?(final\s+)?(class|struct|enum|protocol)\s+\w+`)
	globalFuncPattern   = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s+)*)(public\s+|private\s+|internal\s+|fileprivate\s+|open\s+)?(static\s+)?func\s+([^{]+)`)
)

// includable reports whether an access qualifier admits a member into the
// surface. Private and fileprivate members are excluded; a missing qualifier
// means internal visibility and is kept.
func includable(access string) bool {
	a := strings.TrimSpace(access)
	return !strings.HasPrefix(a, "private") && !strings.HasPrefix(a, "fileprivate")
}

// ExtractImports returns every import line verbatim, in file order.
func ExtractImports(source string) []Declaration {
	var decls []Declaration
	for _, line := range importLinePattern.FindAllString(source, -1) {
		decls = append(decls, Declaration{Kind: KindImport, Lines: []string{line}})
	}
	return decls
}

// ExtractProtocols returns one declaration per protocol block, keeping the
// header with its inheritance clause and the directly-nested method and
// property requirements.
func ExtractProtocols(source string) []Declaration {
	var decls []Declaration
	lines := strings.Split(source, "\n")
	i := 0
	for i < len(lines) {
		m := protocolHeaderPattern.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			i++
			continue
		}

		var block []string
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			block = append(block, attrs)
		}
		block = append(block, m[2]+"protocol "+m[3]+strings.TrimRight(m[4], " \t")+" {")

		body, next := collectBlockMembers(lines, i+1, protocolMember)
		block = append(block, body...)
		block = append(block, "}")

		decls = append(decls, Declaration{Kind: KindProtocol, Name: m[3], Lines: block})
		i = next
	}
	return decls
}

// ExtractTypes returns one declaration per class, struct, or enum block with
// its visible members: stored properties, computed properties (rendered with
// a { get } suffix), and functions, initializers, and deinitializers.
func ExtractTypes(source string) []Declaration {
	var decls []Declaration
	lines := strings.Split(source, "\n")
	i := 0
	for i < len(lines) {
		m := typeHeaderPattern.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			i++
			continue
		}

		var block []string
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			block = append(block, attrs)
		}
		block = append(block, m[2]+m[3]+m[4]+" "+m[5]+m[6]+strings.TrimRight(m[7], " \t")+" {")

		body, next := collectBlockMembers(lines, i+1, typeMember)
		block = append(block, body...)
		block = append(block, "}")

		decls = append(decls, Declaration{Kind: KindType, Name: m[5], Lines: block})
		i = next
	}
	return decls
}

// ExtractGlobalFunctions returns free function signatures found outside any
// type-like body. This is a separate pass with its own boundary tracking: it
// flips an inside-a-type flag on type headers and counts braces until the
// body closes, without sharing state with the block scanners.
func ExtractGlobalFunctions(source string) []Declaration {
	var decls []Declaration
	insideType := false
	depth := 0

	for _, line := range strings.Split(source, "\n") {
		stripped := strings.TrimSpace(line)

		if typeBoundaryPattern.MatchString(stripped) {
			insideType = true
			depth = 0
		}
		if insideType {
			depth += strings.Count(stripped, "{") - strings.Count(stripped, "}")
			if depth <= 0 {
				insideType = false
			}
		}
		if insideType || strings.HasPrefix(stripped, "//") {
			continue
		}

		m := globalFuncPattern.FindStringSubmatch(stripped)
		if m == nil || !includable(m[2]) {
			continue
		}
		var block []string
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			block = append(block, attrs)
		}
		block = append(block, m[2]+m[3]+"func "+strings.TrimSpace(m[4]))
		decls = append(decls, Declaration{Kind: KindFunction, Lines: block})
	}
	return decls
}

// ExtractExtensions returns one declaration per extension block. Only method
// and computed-property members are recognized; extensions cannot add
// storage, so stored-property shapes are never emitted.
func ExtractExtensions(source string) []Declaration {
	var decls []Declaration
	lines := strings.Split(source, "\n")
	i := 0
	for i < len(lines) {
		m := extensionHeaderPattern.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			i++
			continue
		}

		var block []string
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			block = append(block, attrs)
		}
		block = append(block, m[2]+"extension "+m[3]+strings.TrimRight(m[4], " \t")+" {")

		body, next := collectBlockMembers(lines, i+1, extensionMember)
		block = append(block, body...)
		block = append(block, "}")

		decls = append(decls, Declaration{Kind: KindExtension, Name: m[3], Lines: block})
		i = next
	}
	return decls
}

// Scan runs all five scanners over one file's source text.
func Scan(source string) Surface {
	return Surface{
		Imports:    ExtractImports(source),
		Protocols:  ExtractProtocols(source),
		Types:      ExtractTypes(source),
		Functions:  ExtractGlobalFunctions(source),
		Extensions: ExtractExtensions(source),
	}
}

// collectBlockMembers walks a braced body starting at the line after its
// header, with depth starting at 1. A line is handed to the member matcher
// only when it sits directly inside the block, i.e. the depth is exactly 1
// before the line's own braces are counted. Returns the rendered member
// lines and the index of the first line after the body.
func collectBlockMembers(lines []string, start int, member func(string) []string) ([]string, int) {
	var out []string
	depth := 1
	j := start
	for j < len(lines) && depth > 0 {
		stripped := strings.TrimSpace(lines[j])
		direct := depth == 1
		depth += strings.Count(stripped, "{") - strings.Count(stripped, "}")
		if direct && stripped != "" && !strings.HasPrefix(stripped, "//") {
			out = append(out, member(stripped)...)
		}
		j++
	}
	return out, j
}

// protocolMember renders method and property requirements. Requirements
// carry no access qualifiers, so there is no visibility filter here.
func protocolMember(line string) []string {
	var out []string
	if m := protocolFuncPattern.FindStringSubmatch(line); m != nil {
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			out = append(out, memberIndent+attrs)
		}
		out = append(out, memberIndent+m[2]+"func "+strings.TrimSpace(m[3]))
	}
	if m := protocolVarPattern.FindStringSubmatch(line); m != nil {
		out = append(out, memberIndent+m[1]+" "+m[2]+": "+strings.TrimSpace(m[3]))
	}
	return out
}

// typeMember renders stored properties, computed properties, and functions.
// A computed property line also satisfies the stored-property shape up to
// its opening brace, so it is emitted by both matchers.
func typeMember(line string) []string {
	var out []string
	if m := storedPropertyPattern.FindStringSubmatch(line); m != nil && includable(m[2]) {
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			out = append(out, memberIndent+attrs)
		}
		out = append(out, memberIndent+m[2]+m[3]+m[4]+m[5]+" "+m[6]+": "+strings.TrimSpace(m[7]))
	}
	if m := computedPropertyPattern.FindStringSubmatch(line); m != nil && includable(m[2]) {
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			out = append(out, memberIndent+attrs)
		}
		out = append(out, memberIndent+m[2]+m[3]+"var "+m[4]+": "+strings.TrimSpace(m[5])+" { get }")
	}
	if m := memberFunctionPattern.FindStringSubmatch(line); m != nil && includable(m[2]) {
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			out = append(out, memberIndent+attrs)
		}
		out = append(out, memberIndent+m[2]+m[3]+strings.TrimSpace(m[4]))
	}
	return out
}

// extensionMember renders method and computed-property members only.
func extensionMember(line string) []string {
	var out []string
	if m := extensionFuncPattern.FindStringSubmatch(line); m != nil && includable(m[2]) {
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			out = append(out, memberIndent+attrs)
		}
		out = append(out, memberIndent+m[2]+m[3]+"func "+strings.TrimSpace(m[4]))
	}
	if m := extensionVarPattern.FindStringSubmatch(line); m != nil && includable(m[2]) {
		if attrs := strings.TrimSpace(m[1]); attrs != "" {
			out = append(out, memberIndent+attrs)
		}
		out = append(out, memberIndent+m[2]+m[3]+"var "+m[4]+": "+strings.TrimSpace(m[5])+" { get }")
	}
	return out
}
