package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/animvec/config"
)

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir       string
	traceFile *os.File
	statsFile *os.File

	traceHeaderWritten bool
	statsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "trace.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating trace.csv: %w", err)
	}
	om.traceFile = f

	f, err = os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		om.traceFile.Close()
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML alongside the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTrace appends recorded samples to trace.csv.
func (om *OutputManager) WriteTrace(samples []Sample) error {
	if om == nil || len(samples) == 0 {
		return nil
	}

	if !om.traceHeaderWritten {
		if err := gocsv.Marshal(samples, om.traceFile); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		om.traceHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(samples, om.traceFile); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	return nil
}

// WriteStats appends a summary record to stats.csv.
func (om *OutputManager) WriteStats(stats TraceStats) error {
	if om == nil {
		return nil
	}

	records := []TraceStats{stats}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}
	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{om.traceFile, om.statsFile} {
		if f != nil {
			if err := f.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
