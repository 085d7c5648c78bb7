// Package scrollhide provides an Ebitengine container that slides its child
// out of view when the user scrolls toward the content end and reveals it
// again when they scroll back toward the start.
package scrollhide

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultDuration is the show/hide animation time used when Duration is zero.
const DefaultDuration = 300 * time.Millisecond

// Child is any renderable the bar can wrap. The bar never mutates it; it is
// handed an offscreen image of the bar's full configured size to draw into.
type Child interface {
	Draw(dst *ebiten.Image)
}

// HideBar wraps a child and slides it out of view when the user scrolls
// toward the content end, back in when they scroll toward the start. It
// starts shown.
//
// Like ScrollController, a HideBar is confined to the host's update loop.
type HideBar struct {
	// Duration is the show/hide animation time. Zero means DefaultDuration.
	Duration time.Duration

	child      Child
	controller *ScrollController
	height     float64

	shown bool
	anim  heightAnim
	sub   *Subscription

	buf *ebiten.Image

	now func() time.Time
}

// NewHideBar creates a bar of the given full height wrapping child. It
// panics if child or controller is nil; both are required. Call Mount to
// start receiving scroll events.
func NewHideBar(child Child, controller *ScrollController, height float64) *HideBar {
	if child == nil {
		panic("scrollhide: HideBar requires a child")
	}
	if controller == nil {
		panic("scrollhide: HideBar requires a controller")
	}
	return &HideBar{
		child:      child,
		controller: controller,
		height:     height,
		shown:      true,
		anim:       heightAnim{from: height, to: height},
		now:        time.Now,
	}
}

// Mount subscribes the bar to its controller. Mounting twice is a no-op.
func (h *HideBar) Mount() {
	if h.sub != nil {
		return
	}
	h.sub = h.controller.AddListener(h.onScrollChange)
}

// Unmount removes the exact listener registered by Mount. After Unmount,
// scroll events no longer change the bar's state.
func (h *HideBar) Unmount() {
	if h.sub == nil {
		return
	}
	h.sub.Remove()
	h.sub = nil
}

func (h *HideBar) onScrollChange(dir Direction) {
	switch dir {
	case DirectionForward:
		h.Show()
	case DirectionReverse:
		h.Hide()
	}
}

// Show reveals the bar. An already-shown bar is left alone, so repeated
// forward events never restart the animation.
func (h *HideBar) Show() {
	if h.shown {
		return
	}
	h.shown = true
	h.anim.retarget(h.now(), h.height, h.duration())
}

// Hide conceals the bar. An already-hidden bar is left alone.
func (h *HideBar) Hide() {
	if !h.shown {
		return
	}
	h.shown = false
	h.anim.retarget(h.now(), 0, h.duration())
}

// Shown reports the target visibility state.
func (h *HideBar) Shown() bool { return h.shown }

// BarHeight returns the configured full height.
func (h *HideBar) BarHeight() float64 { return h.height }

// VisibleHeight returns the current animated height: BarHeight when shown
// and settled, zero when hidden and settled, linear in between over
// Duration.
func (h *HideBar) VisibleHeight() float64 {
	return h.anim.value(h.now())
}

// Animating reports whether a show/hide transition is still in flight.
func (h *HideBar) Animating() bool {
	return !h.anim.settled(h.now())
}

func (h *HideBar) duration() time.Duration {
	if h.Duration > 0 {
		return h.Duration
	}
	return DefaultDuration
}

// Draw renders the child clipped to the current visible height at the top
// of dst. The child always draws at full size into an offscreen buffer;
// the buffer slides up as the bar hides so the bottom edge leads.
func (h *HideBar) Draw(dst *ebiten.Image) {
	visible := h.VisibleHeight()
	if visible <= 0 {
		return
	}
	w := dst.Bounds().Dx()
	full := int(h.height)
	if w <= 0 || full <= 0 {
		return
	}
	if h.buf == nil || h.buf.Bounds().Dx() != w || h.buf.Bounds().Dy() != full {
		h.buf = ebiten.NewImage(w, full)
	}
	h.buf.Clear()
	h.child.Draw(h.buf)

	origin := dst.Bounds().Min
	clipRect := image.Rect(origin.X, origin.Y, origin.X+w, origin.Y+int(visible+0.5))
	clip := dst.SubImage(clipRect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(origin.X), float64(origin.Y)+visible-h.height)
	clip.DrawImage(h.buf, op)
}
