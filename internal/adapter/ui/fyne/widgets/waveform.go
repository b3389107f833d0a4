// Package widgets provides Fyne widgets for the canwave application.
package widgets

import (
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/lmangani/canwave/internal/waveform"
)

// Waveform is a Fyne widget hosting a waveform renderer. It owns an
// image-backed surface, forwards layout size changes to the renderer as
// resize signals and flushes completed draws back to the screen.
type Waveform struct {
	widget.BaseWidget

	raster   *canvas.Raster
	surface  *waveform.ImageSurface
	renderer *waveform.Renderer
}

// NewWaveform creates the widget and its renderer. The surface starts
// empty; the first layout pass supplies the real pixel size.
func NewWaveform(opts ...waveform.Option) (*Waveform, error) {
	surface := waveform.NewImageSurface(0, 0)
	renderer, err := waveform.New(surface, opts...)
	if err != nil {
		return nil, err
	}

	w := &Waveform{
		surface:  surface,
		renderer: renderer,
	}
	w.raster = canvas.NewRaster(w.render)
	renderer.SetAfterDraw(w.raster.Refresh)
	w.ExtendBaseWidget(w)

	return w, nil
}

// CreateRenderer implements fyne.Widget.
func (w *Waveform) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

// MinSize returns the minimum size of the widget.
func (w *Waveform) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

// SetLogger forwards a logger to the underlying renderer.
func (w *Waveform) SetLogger(logger *slog.Logger) {
	w.renderer.SetLogger(logger)
}

// Regenerate redraws the waveform, producing a fresh pattern when
// synthetic random heights are in effect.
func (w *Waveform) Regenerate() {
	w.renderer.Regenerate()
}

// UpdateOptions merges opts into the renderer configuration and redraws.
func (w *Waveform) UpdateOptions(opts ...waveform.Option) {
	w.renderer.UpdateOptions(opts...)
}

// Options returns a snapshot of the renderer configuration.
func (w *Waveform) Options() waveform.Config {
	return w.renderer.Options()
}

// Close releases the renderer's resize subscription. Call before
// discarding the widget.
func (w *Waveform) Close() {
	w.renderer.Destroy()
}

// render feeds the raster the surface's backing image. A size change is
// reported to the surface, whose resize signal drives the renderer's
// debounced resync; until that fires the previous image is scaled.
func (w *Waveform) render(width, height int) image.Image {
	cw, ch := w.surface.DisplaySize()
	if cw != width || ch != height {
		w.surface.SetDisplaySize(width, height)
	}
	return w.surface.Image()
}

var _ fyne.Widget = (*Waveform)(nil)
