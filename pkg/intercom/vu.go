package intercom

import "math"

// minDBFS is the floor reported for a silent or near-silent buffer, per §3's
// "dBFS is floored at -240.0 rather than -Inf".
const minDBFS = -240.0

// rmsToDBFS converts a linear RMS amplitude to dBFS: 20*log10(max(rms, 1e-12)),
// floored at minDBFS.
func rmsToDBFS(rms float64) float64 {
	if rms < 1e-12 {
		rms = 1e-12
	}
	db := 20 * math.Log10(rms)
	if db < minDBFS {
		return minDBFS
	}
	return db
}

// rms computes the root-mean-square amplitude of a float32 buffer.
func rms(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSq float64
	for _, s := range samples {
		v := float64(s)
		sumSq += v * v
	}
	return math.Sqrt(sumSq / float64(len(samples)))
}

// vuMeter tracks a single smoothed dBFS reading. With alpha == 1.0 (the
// default, per §14's Open Question decision) it reports the instantaneous
// per-frame value; alpha < 1.0 applies one-pole smoothing across ticks,
// matching the shape of vst3go's PeakMeter but operating on dBFS rather than
// linear peak.
type vuMeter struct {
	alpha   float64
	haveVal bool
	valueDB float64
}

func newVUMeter(alpha float64) *vuMeter {
	if alpha <= 0 || alpha > 1 {
		alpha = 1.0
	}
	return &vuMeter{alpha: alpha}
}

// Update folds in one frame's RMS and returns the (possibly smoothed) dBFS.
func (m *vuMeter) Update(samples []float32) float64 {
	db := rmsToDBFS(rms(samples))
	if !m.haveVal || m.alpha >= 1.0 {
		m.valueDB = db
		m.haveVal = true
		return m.valueDB
	}
	m.valueDB = m.alpha*db + (1-m.alpha)*m.valueDB
	return m.valueDB
}

// Value returns the last computed reading without updating it.
func (m *vuMeter) Value() float64 {
	if !m.haveVal {
		return minDBFS
	}
	return m.valueDB
}
