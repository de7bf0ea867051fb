package surface

// ProgressReporter provides callbacks for reporting report-generation
// progress. Implementations can display progress bars, log messages, or
// remain silent.
type ProgressReporter interface {
	// OnDiscoveryStart is called before input paths are resolved.
	OnDiscoveryStart()

	// OnDiscoveryComplete is called once all Swift files are known.
	OnDiscoveryComplete(swiftFiles int)

	// OnFileProcessingStart is called before scanning begins.
	OnFileProcessingStart(totalFiles int)

	// OnFileProcessed is called after each file is scanned.
	OnFileProcessed(fileName string)

	// OnComplete is called when the report has been assembled.
	OnComplete(stats *ReportStats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryStart()                    {}
func (n *NoOpProgressReporter) OnDiscoveryComplete(swiftFiles int)   {}
func (n *NoOpProgressReporter) OnFileProcessingStart(totalFiles int) {}
func (n *NoOpProgressReporter) OnFileProcessed(fileName string)      {}
func (n *NoOpProgressReporter) OnComplete(stats *ReportStats)        {}
