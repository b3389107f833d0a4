package waveform

// Config is a fully-resolved rendering configuration. A Renderer holds one
// Config snapshot between draws; partial caller input is expressed as
// Options applied over DefaultConfig.
type Config struct {
	// BackgroundColor fills the whole surface before bars are drawn.
	// Color strings are passed to the surface uninterpreted; how a
	// malformed string renders is surface-defined.
	BackgroundColor string

	// WaveColor is the fill style used for every bar.
	WaveColor string

	// BarWidth is the width of each bar in pixels.
	BarWidth int

	// Gap is the horizontal space between bars in pixels.
	Gap int

	// MinHeight and MaxHeight bound synthetic bar heights, as percentages
	// of the drawable height (0-100).
	MinHeight float64
	MaxHeight float64

	// Mirror draws bars symmetrically around the horizontal centerline
	// instead of growing from the bottom edge.
	Mirror bool

	// Randomize selects random synthetic heights; when false every bar
	// gets the constant (MinHeight+MaxHeight)/2.
	Randomize bool

	// CustomHeights, when non-empty, supplies bar heights directly. The
	// sequence is tiled periodically to cover the bar count and then
	// truncated, so it overrides the synthetic modes entirely.
	CustomHeights []float64

	// Responsive subscribes the renderer to the surface's resize signal.
	Responsive bool
}

// DefaultConfig returns the configuration used when the caller overrides
// nothing.
func DefaultConfig() Config {
	return Config{
		BackgroundColor: "#0f172a",
		WaveColor:       "rgba(255,255,255,0.7)",
		BarWidth:        3,
		Gap:             4,
		MinHeight:       5,
		MaxHeight:       70,
		Mirror:          true,
		Randomize:       true,
		CustomHeights:   nil,
		Responsive:      true,
	}
}

// Option mutates a single Config field. Applying an option replaces the
// field outright; CustomHeights is replaced wholesale, never merged.
type Option func(*Config)

// WithBackgroundColor sets the surface clear color.
func WithBackgroundColor(c string) Option {
	return func(cfg *Config) { cfg.BackgroundColor = c }
}

// WithWaveColor sets the bar fill color.
func WithWaveColor(c string) Option {
	return func(cfg *Config) { cfg.WaveColor = c }
}

// WithBarWidth sets the bar width in pixels.
func WithBarWidth(px int) Option {
	return func(cfg *Config) { cfg.BarWidth = px }
}

// WithGap sets the space between bars in pixels.
func WithGap(px int) Option {
	return func(cfg *Config) { cfg.Gap = px }
}

// WithHeightRange sets the synthetic height bounds as percentages.
func WithHeightRange(minPct, maxPct float64) Option {
	return func(cfg *Config) {
		cfg.MinHeight = minPct
		cfg.MaxHeight = maxPct
	}
}

// WithMirror toggles mirrored bar geometry.
func WithMirror(mirror bool) Option {
	return func(cfg *Config) { cfg.Mirror = mirror }
}

// WithRandomize toggles random versus flat synthetic heights.
func WithRandomize(randomize bool) Option {
	return func(cfg *Config) { cfg.Randomize = randomize }
}

// WithCustomHeights supplies caller amplitudes as percentages. The slice
// is copied so later caller mutation never reaches the renderer.
func WithCustomHeights(heights []float64) Option {
	clone := make([]float64, len(heights))
	copy(clone, heights)
	return func(cfg *Config) { cfg.CustomHeights = clone }
}

// WithResponsive toggles the resize subscription taken at create time.
func WithResponsive(responsive bool) Option {
	return func(cfg *Config) { cfg.Responsive = responsive }
}

// resolve produces a complete Config from defaults plus overrides.
func resolve(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// snapshot returns a defensive copy whose CustomHeights shares no backing
// array with the live configuration.
func (c Config) snapshot() Config {
	out := c
	if c.CustomHeights != nil {
		out.CustomHeights = make([]float64, len(c.CustomHeights))
		copy(out.CustomHeights, c.CustomHeights)
	}
	return out
}
