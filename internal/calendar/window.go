package calendar

// WindowOptions configures a growable Window. All widths are layout units
// (terminal cells).
type WindowOptions struct {
	InitialRadius int // days materialised on each side of the start index
	Batch         int // indices added per growth step
	ItemWidth     int // width of one date cell
	Threshold     int // distance from an edge that triggers growth
}

// DefaultWindowOptions returns today ± 15 days, growth batches of 15 and a
// threshold of two cells.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		InitialRadius: 15,
		Batch:         15,
		ItemWidth:     7,
		Threshold:     14,
	}
}

func (o WindowOptions) withDefaults() WindowOptions {
	d := DefaultWindowOptions()
	if o.InitialRadius <= 0 {
		o.InitialRadius = d.InitialRadius
	}
	if o.Batch <= 0 {
		o.Batch = d.Batch
	}
	if o.ItemWidth <= 0 {
		o.ItemWidth = d.ItemWidth
	}
	if o.Threshold < 0 {
		o.Threshold = 0
	}
	return o
}

// Growth reports how many indices a Window update materialised at each end.
type Growth struct {
	Prepended int
	Appended  int
}

// Grew reports whether anything was materialised.
func (g Growth) Grew() bool {
	return g.Prepended > 0 || g.Appended > 0
}

func (g Growth) add(o Growth) Growth {
	return Growth{Prepended: g.Prepended + o.Prepended, Appended: g.Appended + o.Appended}
}

// Window is the contiguous range [Lo, Hi] of virtual indices currently backing
// the strip, together with the scroll offset into it.
//
// The range only ever grows. When indices are prepended the offset is shifted
// by the same amount in the same call, so content already on screen stays at
// the same screen column.
type Window struct {
	opts     WindowOptions
	lo, hi   int
	offset   int
	viewport int
}

// NewWindow returns a window of start ± opts.InitialRadius clipped to the
// index domain.
func NewWindow(start int, opts WindowOptions) *Window {
	opts = opts.withDefaults()
	start = clamp(start, 0, Total-1)
	return &Window{
		opts: opts,
		lo:   max(0, start-opts.InitialRadius),
		hi:   min(Total-1, start+opts.InitialRadius),
	}
}

// Range returns the first and last materialised index.
func (w *Window) Range() (lo, hi int) {
	return w.lo, w.hi
}

// Len returns the number of materialised indices.
func (w *Window) Len() int {
	return w.hi - w.lo + 1
}

// Contains reports whether index i is materialised.
func (w *Window) Contains(i int) bool {
	return i >= w.lo && i <= w.hi
}

// Indices returns the materialised indices in ascending order.
func (w *Window) Indices() []int {
	out := make([]int, 0, w.Len())
	for i := w.lo; i <= w.hi; i++ {
		out = append(out, i)
	}
	return out
}

func (w *Window) Offset() int    { return w.offset }
func (w *Window) Viewport() int  { return w.viewport }
func (w *Window) ItemWidth() int { return w.opts.ItemWidth }

// ContentWidth is the total width of all materialised cells.
func (w *Window) ContentWidth() int {
	return w.Len() * w.opts.ItemWidth
}

// SetViewport records the visible width and grows the range if the new width
// brings either edge within the threshold.
func (w *Window) SetViewport(width int) Growth {
	w.viewport = max(0, width)
	return w.ScrollTo(w.offset)
}

// ScrollTo moves the viewport to offset, clamped to the content, then grows
// the range at whichever ends are now near. Calling it again with the same
// offset and viewport is a no-op.
func (w *Window) ScrollTo(offset int) Growth {
	w.offset = clamp(offset, 0, w.maxOffset())
	return w.settle()
}

// ScrollBy moves the viewport by delta cells.
func (w *Window) ScrollBy(delta int) Growth {
	return w.ScrollTo(w.offset + delta)
}

// Ensure grows the range in whole batches until index i is materialised.
// Indices outside the domain are ignored.
func (w *Window) Ensure(i int) Growth {
	var g Growth
	if i < 0 || i >= Total {
		return g
	}
	for i < w.lo {
		g.Prepended += w.prepend()
	}
	for i > w.hi {
		g.Appended += w.append()
	}
	return g
}

// CenterOn materialises index i and scrolls so that its cell sits at
// viewPosition of the viewport (0 = left edge, 0.5 = centred, 1 = right edge).
func (w *Window) CenterOn(i int, viewPosition float64) Growth {
	g := w.Ensure(i)
	if !w.Contains(i) {
		return g
	}
	// Growth either shifts cells or lifts the offset clamp, so re-aim until
	// the range is stable. Each pass that grows strictly enlarges the range.
	for {
		target := w.cellStart(i) - int(viewPosition*float64(w.viewport-w.opts.ItemWidth))
		step := w.ScrollTo(target)
		g = g.add(step)
		if !step.Grew() {
			return g
		}
	}
}

// Visible returns the first and last index whose cell overlaps the viewport.
func (w *Window) Visible() (first, last int) {
	iw := w.opts.ItemWidth
	first = w.lo + w.offset/iw
	last = first
	if w.viewport > 0 {
		last = w.lo + (w.offset+w.viewport-1)/iw
	}
	return min(first, w.hi), min(last, w.hi)
}

// IndexAt returns the index drawn at screen column x of the viewport.
func (w *Window) IndexAt(x int) (int, bool) {
	if x < 0 || (w.viewport > 0 && x >= w.viewport) {
		return 0, false
	}
	i := w.lo + (w.offset+x)/w.opts.ItemWidth
	if !w.Contains(i) {
		return 0, false
	}
	return i, true
}

// CenterIndex returns the index under the middle of the viewport.
func (w *Window) CenterIndex() int {
	i, ok := w.IndexAt(w.viewport / 2)
	if !ok {
		first, _ := w.Visible()
		return first
	}
	return i
}

// Column returns the screen column where index i's cell starts. It may be
// negative or beyond the viewport when i is scrolled out of view.
func (w *Window) Column(i int) int {
	return w.cellStart(i) - w.offset
}

func (w *Window) cellStart(i int) int {
	return (i - w.lo) * w.opts.ItemWidth
}

func (w *Window) maxOffset() int {
	return max(0, w.ContentWidth()-w.viewport)
}

// settle grows both ends until neither is within the threshold of the
// viewport or the domain boundary is reached.
func (w *Window) settle() Growth {
	var g Growth
	th := w.opts.Threshold
	for {
		grew := false
		if w.offset < th && w.lo > 0 {
			g.Prepended += w.prepend()
			grew = true
		}
		if w.offset+w.viewport > w.ContentWidth()-th && w.hi < Total-1 {
			g.Appended += w.append()
			grew = true
		}
		if !grew {
			return g
		}
	}
}

func (w *Window) prepend() int {
	n := min(w.opts.Batch, w.lo)
	w.lo -= n
	w.offset += n * w.opts.ItemWidth
	return n
}

func (w *Window) append() int {
	n := min(w.opts.Batch, Total-1-w.hi)
	w.hi += n
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
