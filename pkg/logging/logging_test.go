package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/pdf-tools/pkg/logging"
)

func TestNewWriter_Format(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

		logger.Info("merged documents", "files", 2)

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("output %q is not JSON: %v", buf.String(), err)
		}
		if entry["msg"] != "merged documents" {
			t.Errorf("msg = %v, want %q", entry["msg"], "merged documents")
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &buf)

		logger.Info("merged documents", "files", 2)

		if out := buf.String(); !strings.Contains(out, "files=2") {
			t.Errorf("output %q missing files=2", out)
		}
	})
}

func TestNewWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn message not logged")
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("verbose"), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.want {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &logging.Config{}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatText {
			t.Errorf("got %q/%q, want info/text", cfg.Level, cfg.Format)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("TEST_LOG_LEVEL", "debug")
		t.Setenv("TEST_LOG_FORMAT", "json")

		cfg := &logging.Config{}
		if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelDebug || cfg.Format != logging.FormatJSON {
			t.Errorf("got %q/%q, want debug/json", cfg.Level, cfg.Format)
		}
	})

	t.Run("env values in any case", func(t *testing.T) {
		t.Setenv("TEST_LOG_LEVEL", " WARN ")
		t.Setenv("TEST_LOG_FORMAT", "Json")

		cfg := &logging.Config{}
		if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelWarn || cfg.Format != logging.FormatJSON {
			t.Errorf("got %q/%q, want warn/json", cfg.Level, cfg.Format)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, cfg := range []*logging.Config{
			{Level: "loud"},
			{Format: "xml"},
		} {
			if err := cfg.Finalize(nil); err == nil {
				t.Errorf("Finalize(%+v) error = nil, want error", *cfg)
			}
		}
	})
}

func TestConfig_Merge(t *testing.T) {
	base := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	base.Merge(&logging.Config{Format: logging.FormatJSON})

	if base.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", base.Level)
	}
	if base.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", base.Format)
	}
}
