package waveform

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
)

// defaultSurfaceHeight is the pixel height of auto-created surfaces when
// the caller does not specify one.
const defaultSurfaceHeight = 200

// Renderer draws a bar waveform onto one Surface. All operations run
// synchronously on the caller's goroutine except the debounced resize
// redraw, which fires on a timer goroutine; internal state is mutex
// protected so the two never interleave. A surface must not be shared
// between renderers, since each full redraw overwrites the whole surface.
type Renderer struct {
	mu      sync.Mutex
	cfg     Config
	surface Surface
	ctx     Context2D
	randFn  func() float64

	logger *slog.Logger

	debounce     *debouncer
	cancelResize func()
	afterDraw    func()
	destroyed    bool
}

// New binds a Renderer to surface, resolves the surface dimensions and
// performs the initial draw. When the resolved configuration is
// responsive and the surface signals resizes, the renderer subscribes to
// that signal for the rest of its life.
//
// Returns ErrInvalidSurface for a nil surface and ErrContextUnavailable
// when the surface cannot provide a 2D context. No operation fails after
// New succeeds.
func New(surface Surface, opts ...Option) (*Renderer, error) {
	if surface == nil {
		return nil, ErrInvalidSurface
	}
	ctx, err := surface.Context2D()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	}

	r := &Renderer{
		cfg:      resolve(opts),
		surface:  surface,
		ctx:      ctx,
		randFn:   rand.Float64,
		debounce: newDebouncer(resizeDebounceDelay),
	}

	r.mu.Lock()
	r.resyncLocked()
	r.drawLocked()
	r.mu.Unlock()

	if r.cfg.Responsive {
		if sig, ok := surface.(ResizeSignaler); ok {
			r.cancelResize = sig.OnResize(r.handleResize)
		}
	}
	return r, nil
}

// NewFromSelector resolves selector through res and binds a Renderer to
// the resulting surface. Returns ErrSurfaceNotFound when the selector
// resolves to nothing and ErrInvalidSurface when it resolves to an
// element that is not a drawing surface.
func NewFromSelector(res Resolver, selector string, opts ...Option) (*Renderer, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: no resolver for %q", ErrSurfaceNotFound, selector)
	}
	el, ok := res.Lookup(selector)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, selector)
	}
	surface, ok := el.(Surface)
	if !ok {
		return nil, fmt.Errorf("%w: element at %q is not a drawing surface", ErrInvalidSurface, selector)
	}
	return New(surface, opts...)
}

// Attach auto-creates an image surface inside c, sized to the container's
// content width and heightPx (or defaultSurfaceHeight when heightPx is
// not positive), appends it as the container's last child and binds a
// Renderer to it. Returns ErrInvalidContainer for a nil container.
func Attach(c Container, heightPx int, opts ...Option) (*Renderer, error) {
	if c == nil {
		return nil, ErrInvalidContainer
	}
	if heightPx <= 0 {
		heightPx = defaultSurfaceHeight
	}
	surface := NewImageSurface(c.ContentWidth(), heightPx)
	c.AppendSurface(surface)
	return New(surface, opts...)
}

// AttachSelector is Attach with the container resolved through res.
// Selector misses and non-container elements both report
// ErrInvalidContainer.
func AttachSelector(res Resolver, selector string, heightPx int, opts ...Option) (*Renderer, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: no resolver for %q", ErrInvalidContainer, selector)
	}
	el, ok := res.Lookup(selector)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContainer, selector)
	}
	c, ok := el.(Container)
	if !ok {
		return nil, fmt.Errorf("%w: element at %q cannot adopt a surface", ErrInvalidContainer, selector)
	}
	return Attach(c, heightPx, opts...)
}

// SetLogger sets the logger used on draw and resize paths. Call after
// construction; a nil logger disables logging.
func (r *Renderer) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// SetAfterDraw registers fn to run after every completed draw, including
// debounced resize redraws. Hosts use it to flush the surface to screen.
func (r *Renderer) SetAfterDraw(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.afterDraw = fn
}

// Regenerate redraws with the current configuration. With synthetic
// random heights in effect each call produces a new pattern; otherwise it
// repaints the same output. Safe to call at any time.
func (r *Renderer) Regenerate() {
	r.mu.Lock()
	r.drawLocked()
	r.mu.Unlock()
}

// UpdateOptions merges opts into the live configuration and redraws.
// Fields untouched by opts keep their current values.
func (r *Renderer) UpdateOptions(opts ...Option) {
	r.mu.Lock()
	for _, opt := range opts {
		opt(&r.cfg)
	}
	r.drawLocked()
	r.mu.Unlock()
}

// Options returns a snapshot of the live configuration. Mutating the
// returned value does not affect the renderer.
func (r *Renderer) Options() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg.snapshot()
}

// Destroy releases the resize subscription and cancels any pending
// debounced redraw. Idempotent; a no-op when the renderer never
// subscribed.
func (r *Renderer) Destroy() {
	r.mu.Lock()
	cancel := r.cancelResize
	r.cancelResize = nil
	r.destroyed = true
	r.mu.Unlock()

	r.debounce.stop()
	if cancel != nil {
		cancel()
	}
}

// handleResize coalesces resize signals: each one cancels the pending
// redraw and reschedules, so a continuous resize gesture costs a single
// resync once the signal goes quiet.
func (r *Renderer) handleResize() {
	r.debounce.trigger(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.destroyed {
			return
		}
		r.resyncLocked()
		r.drawLocked()
	})
}

// resyncLocked aligns the surface's backing pixel dimensions with its
// current displayed size.
func (r *Renderer) resyncLocked() {
	w, h := r.surface.DisplaySize()
	r.surface.Resize(w, h)
}

func (r *Renderer) drawLocked() {
	if r.destroyed {
		return
	}
	// A non-positive bar stride has no defined bar count; skip the draw
	// entirely rather than divide by zero.
	if r.cfg.BarWidth+r.cfg.Gap <= 0 {
		if r.logger != nil {
			r.logger.Debug("skipping draw, bar stride not positive",
				slog.Int("bar_width", r.cfg.BarWidth),
				slog.Int("gap", r.cfg.Gap))
		}
		return
	}

	w, h := r.surface.DisplaySize()
	count := barCount(w, r.cfg.BarWidth, r.cfg.Gap)
	heights := heightSequence(r.cfg, count, r.randFn)
	paint(r.ctx, w, h, r.cfg, heights)

	if r.logger != nil {
		r.logger.Debug("waveform drawn",
			slog.Int("width", w),
			slog.Int("height", h),
			slog.Int("bars", count),
			slog.Bool("mirror", r.cfg.Mirror))
	}
	if r.afterDraw != nil {
		r.afterDraw()
	}
}
