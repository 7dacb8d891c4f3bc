package calendar_test

import (
	"math/rand"
	"testing"

	"github.com/Jinsoo1210/carrot/internal/calendar"
)

func newTestWindow() *calendar.Window {
	return calendar.NewWindow(calendar.Center, calendar.DefaultWindowOptions())
}

func TestNewWindowIsCentered(t *testing.T) {
	w := newTestWindow()
	lo, hi := w.Range()
	if lo != calendar.Center-15 || hi != calendar.Center+15 {
		t.Errorf("Range() = [%d, %d], want [%d, %d]", lo, hi, calendar.Center-15, calendar.Center+15)
	}
	if w.Len() != 31 {
		t.Errorf("Len() = %d, want 31", w.Len())
	}
}

func TestWindowNearStartPrependsAndCorrectsOffset(t *testing.T) {
	w := newTestWindow()
	w.SetViewport(70)
	lo, _ := w.Range()

	// At offset 7 the second materialised cell sits at column 0.
	want := lo + 1
	offset := 7

	g := w.ScrollTo(offset)
	if g.Prepended != 15 {
		t.Fatalf("Prepended = %d, want 15", g.Prepended)
	}
	newLo, _ := w.Range()
	if newLo != lo-15 {
		t.Errorf("lo = %d, want %d", newLo, lo-15)
	}
	if w.Offset() != offset+15*w.ItemWidth() {
		t.Errorf("Offset() = %d, want %d", w.Offset(), offset+15*w.ItemWidth())
	}
	if got, _ := w.IndexAt(0); got != want {
		t.Errorf("IndexAt(0) = %d after prepend, want %d", got, want)
	}
	if col := w.Column(want); col != 0 {
		t.Errorf("Column(%d) = %d after prepend, want 0", want, col)
	}
}

func TestWindowPrependKeepsScreenPosition(t *testing.T) {
	w := newTestWindow()
	w.SetViewport(70)
	w.ScrollTo(50) // well away from both edges

	target := calendar.Center - 10
	colBefore := w.Column(target)

	// Jump close to the start so the next update must prepend.
	loBefore, _ := w.Range()
	w.ScrollTo(10)
	colAtTen := w.Column(target)
	loAfter, _ := w.Range()
	if loAfter >= loBefore {
		t.Fatalf("expected a prepend, range start stayed at %d", loAfter)
	}
	// Scrolling from 50 to 10 moves everything 40 columns right; the prepend
	// itself must not add any further movement.
	if colAtTen != colBefore+40 {
		t.Errorf("Column(%d) = %d, want %d", target, colAtTen, colBefore+40)
	}
}

func TestWindowNearEndAppends(t *testing.T) {
	w := newTestWindow()
	w.SetViewport(70)
	_, hi := w.Range()
	offset := w.Offset()

	g := w.ScrollTo(w.ContentWidth() - 70)
	if g.Appended != 15 {
		t.Fatalf("Appended = %d, want 15", g.Appended)
	}
	_, newHi := w.Range()
	if newHi != hi+15 {
		t.Errorf("hi = %d, want %d", newHi, hi+15)
	}
	if w.Offset() < offset {
		t.Errorf("append moved offset backwards: %d -> %d", offset, w.Offset())
	}
}

func TestWindowGrowthIsIdempotent(t *testing.T) {
	w := newTestWindow()
	first := w.SetViewport(70)
	if !first.Grew() {
		t.Fatal("expected initial viewport to trigger growth at the start edge")
	}
	lo, hi := w.Range()
	offset := w.Offset()

	second := w.SetViewport(70)
	if second.Grew() {
		t.Errorf("second identical update grew the window: %+v", second)
	}
	again := w.ScrollTo(offset)
	if again.Grew() {
		t.Errorf("re-scrolling to the same offset grew the window: %+v", again)
	}
	nlo, nhi := w.Range()
	if nlo != lo || nhi != hi {
		t.Errorf("range changed from [%d, %d] to [%d, %d]", lo, hi, nlo, nhi)
	}
}

func TestWindowWideViewportFills(t *testing.T) {
	w := newTestWindow()
	w.SetViewport(600)
	if w.ContentWidth() < 600 {
		t.Errorf("ContentWidth() = %d, want at least the viewport width", w.ContentWidth())
	}
	if w.Offset()+w.Viewport() > w.ContentWidth() {
		t.Errorf("viewport [%d, %d) exceeds content %d", w.Offset(), w.Offset()+w.Viewport(), w.ContentWidth())
	}
}

func TestWindowStaysContiguousAndNeverShrinks(t *testing.T) {
	w := newTestWindow()
	w.SetViewport(77)
	rng := rand.New(rand.NewSource(7))

	prevLo, prevHi := w.Range()
	for step := 0; step < 2000; step++ {
		switch rng.Intn(4) {
		case 0:
			w.ScrollBy(rng.Intn(400) - 200)
		case 1:
			w.ScrollTo(rng.Intn(w.ContentWidth() + 1))
		case 2:
			w.Ensure(calendar.Center + rng.Intn(2000) - 1000)
		case 3:
			w.CenterOn(calendar.Center+rng.Intn(600)-300, 0.5)
		}

		lo, hi := w.Range()
		if lo > prevLo || hi < prevHi {
			t.Fatalf("step %d: range shrank from [%d, %d] to [%d, %d]", step, prevLo, prevHi, lo, hi)
		}
		prevLo, prevHi = lo, hi

		idx := w.Indices()
		if len(idx) != w.Len() {
			t.Fatalf("step %d: Indices() has %d items, Len() = %d", step, len(idx), w.Len())
		}
		for k := 1; k < len(idx); k++ {
			if idx[k] != idx[k-1]+1 {
				t.Fatalf("step %d: indices not contiguous at %d: %d then %d", step, k, idx[k-1], idx[k])
			}
		}
		if w.Offset() < 0 || w.Offset() > max(0, w.ContentWidth()-w.Viewport()) {
			t.Fatalf("step %d: offset %d out of bounds", step, w.Offset())
		}
	}
}

func TestWindowEnsure(t *testing.T) {
	w := newTestWindow()
	w.SetViewport(70)

	offset := w.Offset()
	g := w.Ensure(calendar.Center + 500)
	if !w.Contains(calendar.Center + 500) {
		t.Fatal("Ensure did not materialise the index")
	}
	if g.Appended%15 != 0 {
		t.Errorf("Appended = %d, want whole batches", g.Appended)
	}
	if w.Offset() != offset {
		t.Errorf("appending changed offset %d -> %d", offset, w.Offset())
	}

	col := w.Column(calendar.Center)
	g = w.Ensure(calendar.Center - 500)
	if !w.Contains(calendar.Center - 500) {
		t.Fatal("Ensure did not materialise the earlier index")
	}
	if got := w.Column(calendar.Center); got != col {
		t.Errorf("prepending moved Center from column %d to %d", col, got)
	}
	if w.Offset() != offset+g.Prepended*w.ItemWidth() {
		t.Errorf("Offset() = %d, want %d", w.Offset(), offset+g.Prepended*w.ItemWidth())
	}

	if g := w.Ensure(-1); g.Grew() {
		t.Errorf("Ensure(-1) grew the window: %+v", g)
	}
	if g := w.Ensure(calendar.Total); g.Grew() {
		t.Errorf("Ensure(Total) grew the window: %+v", g)
	}
}

func TestWindowCenterOn(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"today", calendar.Center},
		{"left edge of range", calendar.Center - 30},
		{"far future", calendar.Center + 300},
		{"far past", calendar.Center - 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWindow()
			w.SetViewport(71)
			w.CenterOn(tt.index, 0.5)

			want := int(0.5 * float64(71-w.ItemWidth()))
			if got := w.Column(tt.index); got != want {
				t.Errorf("Column(%d) = %d, want %d", tt.index, got, want)
			}
			if got := w.CenterIndex(); got != tt.index {
				t.Errorf("CenterIndex() = %d, want %d", got, tt.index)
			}
		})
	}
}

func TestWindowDomainStart(t *testing.T) {
	w := calendar.NewWindow(0, calendar.DefaultWindowOptions())
	w.SetViewport(70)
	w.CenterOn(0, 0.5)

	lo, _ := w.Range()
	if lo != 0 {
		t.Errorf("lo = %d, want 0", lo)
	}
	if w.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0 at the domain start", w.Offset())
	}
	if got := w.Column(0); got != 0 {
		t.Errorf("Column(0) = %d, want 0", got)
	}
}

func TestWindowVisibleAndIndexAt(t *testing.T) {
	w := newTestWindow()
	w.SetViewport(70)
	w.ScrollTo(w.Offset() + 3)

	first, last := w.Visible()
	if last-first+1 < 10 {
		t.Errorf("Visible() = [%d, %d], expected at least 10 cells in 70 columns", first, last)
	}
	if i, ok := w.IndexAt(0); !ok || i != first {
		t.Errorf("IndexAt(0) = %d, %v; want %d", i, ok, first)
	}
	if i, ok := w.IndexAt(69); !ok || i != last {
		t.Errorf("IndexAt(69) = %d, %v; want %d", i, ok, last)
	}
	if _, ok := w.IndexAt(70); ok {
		t.Error("IndexAt(70) should be outside the viewport")
	}
}
