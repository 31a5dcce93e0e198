package lines

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-linefind/dsp/morph"
	"github.com/cwbudde/algo-linefind/stats/rolling"
)

// Island is a candidate line region. Start is the last sample before the
// run of candidate samples and End is the last sample of the run, so the
// run itself is (Start, End].
type Island struct {
	Start int
	End   int
}

// Len returns End - Start.
func (is Island) Len() int { return is.End - is.Start }

// FindCandidateRegions splits y into candidate regions using the default
// configuration. See Detector.FindCandidateRegions.
func FindCandidateRegions(x, y []float64, threshold float64) ([]Island, error) {
	return defaultDetector.FindCandidateRegions(x, y, threshold)
}

// FindCandidateRegions marks samples whose centred rolling standard
// deviation of y reaches the 1-1/threshold quantile, removes spikes from
// the mask and returns the remaining runs in ascending order. The rolling
// window spans LineWidth, rounded to whole samples of x. Fewer than two
// samples in x or y yield no regions.
func (d *Detector) FindCandidateRegions(x, y []float64, threshold float64) ([]Island, error) {
	if len(x) < 2 || len(y) < 2 {
		return []Island{}, nil
	}

	window := d.window(x[1] - x[0])
	first, last, ok := rolling.Bounds(len(y), window)
	if !ok {
		d.log.Warn("rolling window does not fit the spectrum",
			zap.Int("window", window),
			zap.Int("samples", len(y)))
	}

	std := rolling.StdDev(y, window)
	cut := rolling.NanQuantile(std, 1-1/threshold)

	mask := make([]bool, len(std))
	for i, v := range std {
		mask[i] = v >= cut
	}
	candidates := morph.Count(mask)

	mask = morph.RemoveSpikes(mask, d.cfg.SpikeIterations)
	mask[0] = false
	mask[len(mask)-1] = false

	tr := morph.Transitions(mask)
	if len(tr)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrMalformedMask, len(tr))
	}

	islands := make([]Island, 0, len(tr)/2)
	for i := 0; i < len(tr); i += 2 {
		islands = append(islands, Island{Start: tr[i], End: tr[i+1]})
	}

	d.log.Debug("candidate regions",
		zap.Int("window", window),
		zap.Int("first", first),
		zap.Int("last", last),
		zap.Float64("cut", cut),
		zap.Int("candidates", candidates),
		zap.Int("islands", len(islands)))

	return islands, nil
}

// window converts the configured line width into a sample count, rounding
// halves to even.
func (d *Detector) window(step float64) int {
	w := math.RoundToEven(d.cfg.LineWidth / step)
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	if w > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(w)
}
