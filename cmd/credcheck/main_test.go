package main

import (
	"credcheck/config"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunReportsLogFileError(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "missing-dir", "credcheck.log")

	err := run(&config.Config{}, "http://localhost:0/analyze", logFile, nil)
	if err == nil {
		t.Fatalf("run with unwritable log file returned no error")
	}
	if !strings.Contains(err.Error(), "failed to open log file") {
		t.Fatalf("error = %v; want log file error", err)
	}
}
