package waveform

import "math"

// barCount returns how many bars fit in w pixels. A non-positive bar
// stride would make the count unbounded, so it collapses to zero.
func barCount(w, barWidth, gap int) int {
	total := barWidth + gap
	if total <= 0 || w <= 0 {
		return 0
	}
	return w / total
}

// heightSequence derives one height percentage per bar for a single draw.
// Custom heights tile periodically with the period of the original
// sequence and are truncated to exactly count entries; otherwise heights
// are synthesized from the configured range using randFn, which must
// return values in [0, 1).
func heightSequence(cfg Config, count int, randFn func() float64) []float64 {
	if count <= 0 {
		return nil
	}

	if len(cfg.CustomHeights) > 0 {
		heights := make([]float64, 0, count)
		for len(heights) < count {
			heights = append(heights, cfg.CustomHeights...)
		}
		return heights[:count]
	}

	heights := make([]float64, count)
	if !cfg.Randomize {
		flat := (cfg.MinHeight + cfg.MaxHeight) / 2
		for i := range heights {
			heights[i] = flat
		}
		return heights
	}

	// Random heights land in [MinHeight, MaxHeight); the upper bound is
	// exclusive while custom and flat modes can reach it. Callers depend
	// on this exact distribution.
	span := cfg.MaxHeight - cfg.MinHeight
	for i := range heights {
		heights[i] = math.Floor(randFn()*span) + cfg.MinHeight
	}
	return heights
}
