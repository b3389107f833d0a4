package waveform

// paint clears the surface and fills one bar (or mirrored bar pair) per
// height entry, left to right from x = 0 with no leading margin. Heights
// are percentages of the drawable height; mirrored bars split that
// height evenly around the horizontal centerline.
func paint(ctx Context2D, w, h int, cfg Config, heights []float64) {
	ctx.SetFillStyle(cfg.BackgroundColor)
	ctx.FillRect(0, 0, float64(w), float64(h))

	ctx.SetFillStyle(cfg.WaveColor)

	stride := float64(cfg.BarWidth + cfg.Gap)
	barW := float64(cfg.BarWidth)
	fullH := float64(h)
	centerY := fullH / 2

	for i, pct := range heights {
		x := float64(i) * stride
		if cfg.Mirror {
			barH := centerY * pct / 100
			ctx.FillRect(x, centerY-barH, barW, barH)
			ctx.FillRect(x, centerY, barW, barH)
		} else {
			barH := fullH * pct / 100
			ctx.FillRect(x, fullH-barH, barW, barH)
		}
	}
}
