package widgets

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmangani/canwave/internal/testutil"
	"github.com/lmangani/canwave/internal/waveform"
)

func TestNewWaveform_DefaultOptions(t *testing.T) {
	_ = test.NewApp()

	w, err := NewWaveform()
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, waveform.DefaultConfig(), w.Options())
}

func TestNewWaveform_AppliesOptions(t *testing.T) {
	_ = test.NewApp()

	w, err := NewWaveform(waveform.WithWaveColor("#ff0000"), waveform.WithMirror(false))
	require.NoError(t, err)
	defer w.Close()

	cfg := w.Options()
	assert.Equal(t, "#ff0000", cfg.WaveColor)
	assert.False(t, cfg.Mirror)
}

func TestWaveform_UpdateOptions(t *testing.T) {
	_ = test.NewApp()

	w, err := NewWaveform()
	require.NoError(t, err)
	defer w.Close()

	w.UpdateOptions(waveform.WithBarWidth(7))

	assert.Equal(t, 7, w.Options().BarWidth)
	assert.Equal(t, waveform.DefaultConfig().Gap, w.Options().Gap)
}

func TestWaveform_RenderSizeChangeResyncsSurface(t *testing.T) {
	defer testutil.VerifyNoLeaks(t, testutil.IgnoreFyneGoroutines()...)
	_ = test.NewApp()

	w, err := NewWaveform(waveform.WithRandomize(false))
	require.NoError(t, err)
	defer w.Close()

	// The raster reports the layout size; the debounced resync follows.
	img := w.render(120, 60)
	require.NotNil(t, img)

	assert.Eventually(t, func() bool {
		b := w.surface.Image().Bounds()
		return b.Dx() == 120 && b.Dy() == 60
	}, time.Second, 10*time.Millisecond)
}

func TestWaveform_CloseIsIdempotent(t *testing.T) {
	_ = test.NewApp()

	w, err := NewWaveform()
	require.NoError(t, err)

	w.Close()
	w.Close()
}

func TestWaveform_InWindow(t *testing.T) {
	_ = test.NewApp()

	w, err := NewWaveform(waveform.WithRandomize(false))
	require.NoError(t, err)
	defer w.Close()

	win := test.NewWindow(w)
	defer win.Close()

	assert.NotNil(t, w.CreateRenderer())
}
