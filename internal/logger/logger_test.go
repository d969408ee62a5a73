package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "debug",
			expected: []string{"DEBUG", "INFO", "WARN", "ERROR"},
			excluded: nil,
		},
		{
			level:    "info",
			expected: []string{"INFO", "WARN", "ERROR"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"WARN", "ERROR"},
			excluded: []string{"DEBUG", "INFO"},
		},
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"DEBUG", "INFO", "WARN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  1,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}

			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			data, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			content := string(data)

			for _, want := range tt.expected {
				if !strings.Contains(content, want) {
					t.Errorf("level %s: expected %s entries in log", tt.level, want)
				}
			}
			for _, unwanted := range tt.excluded {
				if strings.Contains(content, unwanted) {
					t.Errorf("level %s: unexpected %s entries in log", tt.level, unwanted)
				}
			}
		})
	}
}

func TestSugarAvailableAfterInit(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "sugar.log")
	if err := InitWithFileConfig("info", DefaultFileConfig(logFile), false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	if Sugar == nil {
		t.Fatal("Sugar should be non-nil after Init")
	}
	Sugar.Infof("formatted %d", 42)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "formatted 42") {
		t.Error("expected sugared log entry in file")
	}
}
