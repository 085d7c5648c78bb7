package scrollhide

// Direction describes which way the user is scrolling.
type Direction int

const (
	DirectionIdle Direction = iota
	// DirectionForward is scrolling toward the content start (offset decreasing).
	DirectionForward
	// DirectionReverse is scrolling toward the content end (offset increasing).
	DirectionReverse
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionReverse:
		return "reverse"
	default:
		return "idle"
	}
}
