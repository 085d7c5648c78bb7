package scrollhide

// ScrollController is an observable scroll position. The host application
// owns it and feeds it the current offset from its update loop; widgets
// subscribe to learn which way the user is scrolling.
//
// A controller is confined to the host's event dispatch (ebiten's Update
// loop) and is not safe for concurrent use.
type ScrollController struct {
	offset    float64
	listeners []*Subscription
}

// Subscription is the handle returned by AddListener. Remove detaches the
// exact listener that was registered and may be called more than once.
type Subscription struct {
	c  *ScrollController
	fn func(Direction)
}

// NewScrollController creates a controller at the given initial offset.
func NewScrollController(initial float64) *ScrollController {
	return &ScrollController{offset: initial}
}

// Offset returns the current scroll position.
func (c *ScrollController) Offset() float64 { return c.offset }

// SetOffset records a new scroll position and synchronously notifies
// listeners with the direction derived from the delta sign. Setting the
// same offset again notifies nobody.
func (c *ScrollController) SetOffset(offset float64) {
	if offset == c.offset {
		return
	}
	dir := DirectionForward
	if offset > c.offset {
		dir = DirectionReverse
	}
	c.offset = offset

	// Notify over the current slice; Remove builds a fresh slice, so a
	// listener unsubscribing mid-notification only nils its own entry here.
	for _, s := range c.listeners {
		if s.fn != nil {
			s.fn(dir)
		}
	}
}

// AddListener registers fn to be called on every offset change. The
// returned handle must be retained to unsubscribe.
func (c *ScrollController) AddListener(fn func(Direction)) *Subscription {
	s := &Subscription{c: c, fn: fn}
	c.listeners = append(c.listeners, s)
	return s
}

// Remove detaches the listener. Calling it again is a no-op.
func (s *Subscription) Remove() {
	if s.c == nil {
		return
	}
	live := make([]*Subscription, 0, len(s.c.listeners))
	for _, sub := range s.c.listeners {
		if sub != s {
			live = append(live, sub)
		}
	}
	s.c.listeners = live
	s.c = nil
	s.fn = nil
}
