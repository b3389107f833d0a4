package waveform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "#0f172a", cfg.BackgroundColor)
	assert.Equal(t, "rgba(255,255,255,0.7)", cfg.WaveColor)
	assert.Equal(t, 3, cfg.BarWidth)
	assert.Equal(t, 4, cfg.Gap)
	assert.Equal(t, 5.0, cfg.MinHeight)
	assert.Equal(t, 70.0, cfg.MaxHeight)
	assert.True(t, cfg.Mirror)
	assert.True(t, cfg.Randomize)
	assert.Empty(t, cfg.CustomHeights)
	assert.True(t, cfg.Responsive)
}

func TestResolve_NoOptionsKeepsDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), resolve(nil))
}

func TestResolve_OptionsReplaceFields(t *testing.T) {
	cfg := resolve([]Option{
		WithBackgroundColor("#000"),
		WithWaveColor("#ff0000"),
		WithBarWidth(8),
		WithGap(0),
		WithHeightRange(10, 90),
		WithMirror(false),
		WithRandomize(false),
		WithCustomHeights([]float64{20, 80}),
		WithResponsive(false),
	})

	assert.Equal(t, "#000", cfg.BackgroundColor)
	assert.Equal(t, "#ff0000", cfg.WaveColor)
	assert.Equal(t, 8, cfg.BarWidth)
	assert.Equal(t, 0, cfg.Gap)
	assert.Equal(t, 10.0, cfg.MinHeight)
	assert.Equal(t, 90.0, cfg.MaxHeight)
	assert.False(t, cfg.Mirror)
	assert.False(t, cfg.Randomize)
	assert.Equal(t, []float64{20, 80}, cfg.CustomHeights)
	assert.False(t, cfg.Responsive)
}

func TestResolve_UntouchedFieldsKeepDefaults(t *testing.T) {
	cfg := resolve([]Option{WithWaveColor("#ff0000")})

	want := DefaultConfig()
	want.WaveColor = "#ff0000"
	assert.Equal(t, want, cfg)
}

func TestWithCustomHeights_CopiesCallerSlice(t *testing.T) {
	caller := []float64{10, 20, 30}
	cfg := resolve([]Option{WithCustomHeights(caller)})

	caller[0] = 99
	assert.Equal(t, []float64{10, 20, 30}, cfg.CustomHeights)
}

func TestConfig_SnapshotIsolatesCustomHeights(t *testing.T) {
	cfg := resolve([]Option{WithCustomHeights([]float64{10, 20})})

	snap := cfg.snapshot()
	snap.CustomHeights[0] = 99

	assert.Equal(t, []float64{10, 20}, cfg.CustomHeights)
}
