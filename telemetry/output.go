package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/chainrig/config"
	"github.com/gocarina/gocsv"
)

// OutputManager writes window stats to telemetry.csv in an output directory.
// A nil manager discards everything.
type OutputManager struct {
	dir           string
	telemetryFile *os.File

	telemetryHeaderWritten bool
}

// NewOutputManager creates the output directory and opens telemetry.csv for
// appending, so a restarted scene adds to the rows of earlier runs. The
// header is only written into an empty file. Returns nil if dir is empty
// (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "telemetry.csv"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening telemetry.csv: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading telemetry.csv: %w", err)
	}
	return &OutputManager{
		dir:                    dir,
		telemetryFile:          f,
		telemetryHeaderWritten: info.Size() > 0,
	}, nil
}

// WriteConfig saves the effective tuning next to the telemetry so a run can
// be repeated.
func (om *OutputManager) WriteConfig() error {
	if om == nil {
		return nil
	}
	return config.WriteTuning(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.telemetryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.telemetryFile == nil {
		return nil
	}
	err := om.telemetryFile.Close()
	om.telemetryFile = nil
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}
