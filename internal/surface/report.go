package surface

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// sectionSeparator closes every per-file section in a report.
var sectionSeparator = strings.Repeat("/", 100)

// ReportStats summarizes one report build.
type ReportStats struct {
	SwiftFiles            int
	Declarations          int
	Errors                int
	Lines                 int
	ProcessingTimeSeconds float64
}

// Reporter builds full surface map reports over files and directories.
type Reporter struct {
	gen            *Generator
	sourcePatterns []string
	ignorePatterns []string
	progress       ProgressReporter
}

// NewReporter creates a reporter. Directory inputs are filtered through the
// given source and ignore glob patterns. gen and progress may be nil, in
// which case a wall-clock generator and a silent reporter are used.
func NewReporter(gen *Generator, sourcePatterns, ignorePatterns []string, progress ProgressReporter) *Reporter {
	if gen == nil {
		gen = NewGenerator()
	}
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}
	return &Reporter{
		gen:            gen,
		sourcePatterns: sourcePatterns,
		ignorePatterns: ignorePatterns,
		progress:       progress,
	}
}

// target is one resolved input path: a single Swift file, or a directory
// with its discovered files.
type target struct {
	dir   string
	files []string
}

// Build scans every input path and assembles the report text. Single Swift
// files get a standalone banner; directories are walked and their files
// processed in sorted path order, each in its own section. Paths that are
// neither a Swift file nor a directory are skipped. Read failures are
// rendered inline as error markers so one bad file never aborts the run.
func (r *Reporter) Build(paths []string) (string, *ReportStats) {
	start := time.Now()
	stats := &ReportStats{}

	r.progress.OnDiscoveryStart()
	targets, total := r.resolve(paths)
	r.progress.OnDiscoveryComplete(total)
	r.progress.OnFileProcessingStart(total)

	var out []string
	for _, t := range targets {
		if t.dir == "" {
			out = append(out,
				"// Generated: "+r.gen.timestamp(),
				"// Swift API Surface Map for: "+t.files[0],
				"// Generated by Swift Code Map Generator",
				"// Contains: imports, protocols, classes/structs/enums, global functions, extensions",
				"// Excludes: implementation details, private members",
				"")
			out = r.appendFileMap(out, t.files[0], stats)
			continue
		}

		out = append(out,
			"// Generated: "+r.gen.timestamp(),
			"// Swift API Surface Map for directory: "+t.dir,
			fmt.Sprintf("// Found %d Swift files", len(t.files)),
			"// Generated by Swift Code Map Generator",
			"")
		for _, f := range t.files {
			out = append(out, "// === "+f+" ===", "")
			out = r.appendFileMap(out, f, stats)
		}
	}

	text := strings.Join(out, "\n")
	stats.SwiftFiles = total
	stats.Lines = lineCount(text)
	stats.ProcessingTimeSeconds = time.Since(start).Seconds()
	r.progress.OnComplete(stats)
	return text, stats
}

// resolve expands the input paths into scan targets. Directories with no
// Swift files are dropped entirely; they produce no report section.
func (r *Reporter) resolve(paths []string) ([]target, int) {
	var targets []target
	total := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("Warning: cannot access %s: %v", path, err)
			continue
		}
		switch {
		case !info.IsDir() && strings.HasSuffix(path, ".swift"):
			targets = append(targets, target{files: []string{path}})
			total++
		case info.IsDir():
			discovery, err := NewFileDiscovery(path, r.sourcePatterns, r.ignorePatterns)
			if err != nil {
				log.Printf("Warning: skipping %s: %v", path, err)
				continue
			}
			files, err := discovery.DiscoverFiles()
			if err != nil {
				log.Printf("Warning: skipping %s: %v", path, err)
				continue
			}
			if len(files) == 0 {
				continue
			}
			targets = append(targets, target{dir: path, files: files})
			total += len(files)
		}
	}
	return targets, total
}

// appendFileMap appends one file's code map, or its error or empty marker,
// followed by the section separator.
func (r *Reporter) appendFileMap(out []string, path string, stats *ReportStats) []string {
	data, err := os.ReadFile(path)
	switch {
	case err != nil:
		stats.Errors++
		out = append(out, "// Error processing file: "+err.Error())
	default:
		s := Scan(string(data))
		if s.Empty() {
			out = append(out, "// No public API surface found")
		} else {
			stats.Declarations += s.Count()
			out = append(out, r.gen.Render(s))
		}
	}
	r.progress.OnFileProcessed(path)
	return append(out, "", sectionSeparator, "")
}

func lineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
