package waveform

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// ImageSurface is an image.RGBA-backed Surface. It keeps the displayed
// size separate from the backing pixel dimensions, the way a host canvas
// element does: the host moves the displayed size with SetDisplaySize and
// the renderer later resyncs the backing store through Resize.
type ImageSurface struct {
	mu       sync.Mutex
	img      *image.RGBA
	displayW int
	displayH int

	subs    map[int]func()
	nextSub int
}

// NewImageSurface creates a surface whose backing store and displayed
// size both start at w by h pixels. Non-positive dimensions collapse to
// zero.
func NewImageSurface(w, h int) *ImageSurface {
	w = max(w, 0)
	h = max(h, 0)
	return &ImageSurface{
		img:      image.NewRGBA(image.Rect(0, 0, w, h)),
		displayW: w,
		displayH: h,
		subs:     make(map[int]func()),
	}
}

// DisplaySize implements Surface.
func (s *ImageSurface) DisplaySize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayW, s.displayH
}

// Resize implements Surface, reallocating the backing store when the
// requested pixel dimensions differ from the current ones.
func (s *ImageSurface) Resize(w, h int) {
	w = max(w, 0)
	h = max(h, 0)
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Context2D implements Surface. The returned context stays valid across
// Resize calls.
func (s *ImageSurface) Context2D() (Context2D, error) {
	return &imageContext{surface: s}, nil
}

// SetDisplaySize records the size the host is displaying the surface at
// and fires the resize signal. The backing store is left alone until a
// renderer resyncs it.
func (s *ImageSurface) SetDisplaySize(w, h int) {
	s.mu.Lock()
	s.displayW = max(w, 0)
	s.displayH = max(h, 0)
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// OnResize implements ResizeSignaler. The returned cancel is idempotent.
func (s *ImageSurface) OnResize(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Subscribers reports how many resize listeners are registered.
func (s *ImageSurface) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Image returns the backing image. The renderer draws into it in place,
// so hosts should treat it as read-only between draws.
func (s *ImageSurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}

// imageContext implements Context2D over an ImageSurface with
// source-over compositing, mirroring canvas fill semantics.
type imageContext struct {
	surface *ImageSurface
	fill    color.NRGBA
}

func (c *imageContext) SetFillStyle(style string) {
	c.fill = parseColor(style)
}

func (c *imageContext) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	x1 := int(math.Round(x + w))
	y1 := int(math.Round(y + h))

	c.surface.mu.Lock()
	defer c.surface.mu.Unlock()
	rect := image.Rect(x0, y0, x1, y1).Intersect(c.surface.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.surface.img, rect, image.NewUniform(c.fill), image.Point{}, draw.Over)
}

// parseColor interprets a fill style string: #rgb and #rrggbb hex forms,
// plus rgb()/rgba() functional notation with 0-255 channels and a 0-1
// alpha. Anything else renders as transparent black, which is this
// surface's defined handling of malformed colors.
func parseColor(style string) color.NRGBA {
	style = strings.TrimSpace(style)

	if strings.HasPrefix(style, "#") {
		// go-colorful accepts both the #rgb and #rrggbb internet forms.
		if col, err := colorful.Hex(style); err == nil {
			r, g, b := col.RGB255()
			return color.NRGBA{R: r, G: g, B: b, A: 255}
		}
		return color.NRGBA{}
	}

	if strings.HasPrefix(style, "rgb") {
		return parseRGBFunc(style)
	}

	return color.NRGBA{}
}

func parseRGBFunc(style string) color.NRGBA {
	open := strings.IndexByte(style, '(')
	end := strings.IndexByte(style, ')')
	if open < 0 || end < open {
		return color.NRGBA{}
	}
	parts := strings.Split(style[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}
		}
		ch[i] = uint8(v)
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}
		}
		alpha = uint8(math.Round(a * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}
}

var (
	_ Surface        = (*ImageSurface)(nil)
	_ ResizeSignaler = (*ImageSurface)(nil)
)
