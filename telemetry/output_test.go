package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v, %v", om, err)
	}
	// A nil manager accepts writes.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("WriteTelemetry on nil manager: %v", err)
	}
	if err := om.WriteConfig(); err != nil {
		t.Errorf("WriteConfig on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestWriteTelemetryHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: i * 60, Breakaways: i}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
	}
	if err := om.WriteConfig(); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("expected second Close to be a no-op, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "window_end,sim_time,") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Contains(lines[0], "WindowStartTick") {
		t.Errorf("expected skipped column to stay out of the header, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "180,") {
		t.Errorf("expected last row to start with its window end, got %q", lines[3])
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("expected config.yaml written: %v", err)
	}
}

func TestReopenedOutputAppendsRows(t *testing.T) {
	dir := t.TempDir()
	for run := 1; run <= 2; run++ {
		om, err := NewOutputManager(dir)
		if err != nil {
			t.Fatalf("run %d: NewOutputManager: %v", run, err)
		}
		for i := 1; i <= 2; i++ {
			if err := om.WriteTelemetry(WindowStats{WindowEndTick: run*100 + i}); err != nil {
				t.Fatalf("run %d: WriteTelemetry: %v", run, err)
			}
		}
		if err := om.Close(); err != nil {
			t.Fatalf("run %d: Close: %v", run, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected one header and 4 rows across both runs, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "window_end,") {
		t.Errorf("unexpected header %q", lines[0])
	}
	for i, prefix := range []string{"101,", "102,", "201,", "202,"} {
		if !strings.HasPrefix(lines[i+1], prefix) {
			t.Errorf("row %d: expected prefix %q, got %q", i+1, prefix, lines[i+1])
		}
	}
}
