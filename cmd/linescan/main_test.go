package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// writeFixtures creates a template sampled every 100 units and a config
// describing one Gaussian line on a 1000-point axis over [0, 1e6].
func writeFixtures(t *testing.T, extra string) (cfgPath string, center float64) {
	t.Helper()
	dir := t.TempDir()

	step := 1e6 / 999
	sigma := 3 * step
	n := int(10*sigma/100) + 1
	var tpl strings.Builder
	for i := 0; i < n; i++ {
		d := (float64(i)*100 - float64(n-1)*50) / sigma
		fmt.Fprintf(&tpl, "%.17g\n", math.Exp(-0.5*d*d))
	}
	tplPath := filepath.Join(dir, "line.csv")
	if err := os.WriteFile(tplPath, []byte(tpl.String()), 0o600); err != nil {
		t.Fatal(err)
	}

	center = 500 * step
	body := fmt.Sprintf(`template: %q
template_step: 100
threshold: 12
detector:
  line_width: %.17g
synth:
  points: 1000
  start: 0
  stop: 1000000
  lines: [%.17g]
  width: %.17g
  height: 1
  noise: 0
logging:
  level: error
%s`, tplPath, 25*step, center, sigma, extra)
	cfgPath = filepath.Join(dir, "linescan.yaml")
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return cfgPath, center
}

func TestRunFindsSyntheticLine(t *testing.T) {
	cfgPath, center := writeFixtures(t, "")
	var stdout, stderr bytes.Buffer

	if err := run([]string{"-c", cfgPath}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	rows := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(rows) != 3 {
		t.Fatalf("output has %d lines, want header, rule and one row:\n%s", len(rows), stdout.String())
	}
	fields := strings.Fields(rows[2])
	var f float64
	if _, err := fmt.Sscan(fields[1], &f); err != nil {
		t.Fatal(err)
	}
	step := 1e6 / 999
	if math.Abs(f-center) > 2*step {
		t.Fatalf("line at %v, want %v", f, center)
	}
}

func TestRunFlagOverridesConfig(t *testing.T) {
	cfgPath, _ := writeFixtures(t, "")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-c", cfgPath, "--threshold", "0.5"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "threshold") {
		t.Fatalf("err = %v, want threshold validation error", err)
	}
}

func TestRunMissingTemplate(t *testing.T) {
	cfgPath, _ := writeFixtures(t, "")
	var stdout, stderr bytes.Buffer

	missing := filepath.Join(t.TempDir(), "nope.csv")
	if err := run([]string{"-c", cfgPath, "-t", missing}, &stdout, &stderr); err == nil {
		t.Fatal("expected error for missing explicit template")
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--help"}, &stdout, &stderr)
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("err = %v, want ErrHelp", err)
	}
	if !strings.Contains(stderr.String(), "--threshold") {
		t.Fatalf("usage missing flags:\n%s", stderr.String())
	}
}
