package waveform

// Surface is an addressable 2D drawing target. The renderer never owns
// the surface: its displayed size can change under the renderer's feet
// (host layout, window resizes), so the current size is re-read before
// every draw.
type Surface interface {
	// DisplaySize reports the surface's current displayed size in pixels.
	DisplaySize() (w, h int)

	// Resize syncs the surface's backing pixel dimensions to the given
	// size. Called before drawing when the displayed size has changed.
	Resize(w, h int)

	// Context2D returns the surface's 2D drawing context, or an error
	// when the surface cannot provide one.
	Context2D() (Context2D, error)
}

// Context2D is the minimal canvas-style drawing contract the renderer
// needs: a mutable fill style plus axis-aligned rectangle fills. Fill
// styles are color strings interpreted by the surface; the renderer
// passes them through unvalidated.
type Context2D interface {
	SetFillStyle(style string)
	FillRect(x, y, w, h float64)
}

// ResizeSignaler is an optional Surface capability. Surfaces whose host
// environment resizes them implement it so a responsive renderer can
// follow along. OnResize registers fn and returns a cancel function that
// must be safe to call exactly once per registration.
type ResizeSignaler interface {
	OnResize(fn func()) (cancel func())
}

// Resolver looks elements up by selector in a host document or UI tree.
// The renderer only cares whether the result is a Surface or Container;
// what a selector means is resolver-defined.
type Resolver interface {
	Lookup(selector string) (element any, ok bool)
}

// Container is a host element that can adopt an auto-created surface as
// its last child, sized to the container's full content width.
type Container interface {
	ContentWidth() int
	AppendSurface(s Surface)
}
