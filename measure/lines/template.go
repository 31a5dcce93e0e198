package lines

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-linefind/dsp/interp"
)

// DefaultTemplateStep is the frequency spacing of the bundled template.
const DefaultTemplateStep = 0.1

// Template is a reference line shape sampled at a fixed native step.
type Template struct {
	Samples []float64
	Step    float64
}

// NewTemplate returns a template sampled at DefaultTemplateStep.
func NewTemplate(samples []float64) Template {
	return Template{Samples: samples, Step: DefaultTemplateStep}
}

// Len returns the number of native samples.
func (t Template) Len() int { return len(t.Samples) }

// Enabled reports whether the template has enough samples for detection.
func (t Template) Enabled() bool { return len(t.Samples) >= 2 }

// Resample evaluates the template on a grid of the given step covering the
// native span [0, (Len()-1)*Step), end excluded. A quadratic interpolating
// spline is used; two-sample templates are interpolated linearly.
func (t Template) Resample(step float64) ([]float64, error) {
	native := t.Step
	if !(native > 0) {
		native = DefaultTemplateStep
	}

	out, err := interp.Resample(t.Samples, native, step)
	if err != nil {
		return nil, fmt.Errorf("resample template: %w", err)
	}

	return out, nil
}

// LoadTemplate reads a single-column numeric template. Each non-blank line
// contributes its first field; fields may be separated by whitespace or
// commas. Lines starting with '#' are comments.
func LoadTemplate(r io.Reader) (Template, error) {
	var samples []float64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ';' || c == ' ' || c == '\t'
		})
		if len(fields) == 0 {
			continue
		}

		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Template{}, fmt.Errorf("template line %d: %w", line, err)
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return Template{}, fmt.Errorf("read template: %w", err)
	}

	return NewTemplate(samples), nil
}

// LoadTemplateFile reads a template from path. A missing file yields an
// error matching fs.ErrNotExist; callers typically treat it as disabled
// detection.
func LoadTemplateFile(path string) (Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return Template{}, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	return LoadTemplate(f)
}
