// Package lines finds spectral lines in a sampled spectrum.
//
// Detection runs in four stages:
//
//   - the voltage channel is high-pass filtered and cross-correlated with a
//     reference line template resampled to the spectrum's frequency step;
//   - the z-scored correlation is reduced to a centred rolling standard
//     deviation over one line width, and samples above the 1-1/threshold
//     quantile form a candidate mask;
//   - the mask is cleaned with binary morphology and split into islands;
//   - each island contributes the index of its maximum amplitude, unless
//     that maximum sits on the island's first sample.
//
// # Usage
//
//	tpl, err := lines.LoadTemplateFile("averaged fs signal filtered.csv")
//	if err != nil && !errors.Is(err, fs.ErrNotExist) {
//		return err
//	}
//	d := lines.NewDetector(lines.WithLogger(logger))
//	idx, err := d.Detect(freq, volt, tpl, 12)
//
// Short inputs and disabled templates yield an empty result rather than an
// error. A Detector holds no mutable state and is safe for concurrent use.
package lines
