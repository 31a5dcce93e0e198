package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-linefind/measure/lines"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(cfg.Detector.HighCutRatio, 1) || cfg.Detector.LineWidth != lines.LineWidth {
		t.Fatalf("detector defaults = %+v", cfg.Detector)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
threshold: 24
detector:
  line_width: 5.0e5
  high_cut_ratio: .inf
synth:
  lines: [118.9e9]
  shape: lorentzian
  baseline_offset: 0.5
logging:
  level: debug
  development: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threshold != 24 || cfg.Detector.LineWidth != 5e5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Detector.FilterOrder != 5 || cfg.TemplateStep != 0.1 || cfg.Synth.Points != 20001 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if len(cfg.Synth.Lines) != 1 || cfg.Synth.Lines[0] != 118.9e9 || cfg.Synth.Shape != "lorentzian" ||
		cfg.Synth.BaselineOffset != 0.5 || cfg.Synth.BaselineSlope != 0 {
		t.Fatalf("synth = %+v", cfg.Synth)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Development {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file: err = %v", err)
	}
	if _, err := Load(writeConfig(t, "threshold: [1, 2")); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("bad yaml: err = %v", err)
	}
	_, err := Load(writeConfig(t, "threshold: 0.5\ndetector:\n  filter_order: 0\n"))
	if err == nil || !strings.Contains(err.Error(), "threshold") || !strings.Contains(err.Error(), "filter_order") {
		t.Fatalf("invalid values: err = %v", err)
	}
}

func TestValidateShape(t *testing.T) {
	cfg := Default()
	cfg.Synth.Shape = "square"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected shape error")
	}
}

func TestDetectorOptions(t *testing.T) {
	cfg := Default()
	cfg.Detector.LineWidth = 42
	cfg.Detector.SpikeIterations = 3

	got := lines.NewDetector(cfg.DetectorOptions()...).Config()
	if got.LineWidth != 42 || got.SpikeIterations != 3 || got.FilterOrder != 5 {
		t.Fatalf("detector config = %+v", got)
	}
}
