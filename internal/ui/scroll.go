package ui

import "math"

// ScrollState provides reusable vertical scroll tracking with smooth
// animation. The animated position is what gets published to a
// scrollhide.ScrollController each frame.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64

	// WheelSpeed is pixels per mouse wheel scroll unit.
	WheelSpeed float64
}

// HandleMouseWheel updates the target scroll position from mouse wheel input.
// Call this from Update().
func (s *ScrollState) HandleMouseWheel() {
	_, wy := MouseWheelDelta()
	if wy != 0 {
		s.TargetScrollY -= wy * s.WheelSpeed
		if s.TargetScrollY < 0 {
			s.TargetScrollY = 0
		}
	}
}

// HandleKeys updates the target scroll position from held arrow/vi keys.
func (s *ScrollState) HandleKeys(dir Direction) {
	switch dir {
	case DirUp:
		s.TargetScrollY -= KeyScrollStep
		if s.TargetScrollY < 0 {
			s.TargetScrollY = 0
		}
	case DirDown:
		s.TargetScrollY += KeyScrollStep
	}
}

// ClampTarget keeps the target within [0, maxScroll].
func (s *ScrollState) ClampTarget(maxScroll float64) {
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.TargetScrollY > maxScroll {
		s.TargetScrollY = maxScroll
	}
	if s.TargetScrollY < 0 {
		s.TargetScrollY = 0
	}
}

// Animate performs smooth scroll interpolation. Snaps when close so the
// published offset settles instead of emitting sub-pixel deltas forever.
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	if math.Abs(s.TargetScrollY-s.ScrollY) < 0.1 {
		s.ScrollY = s.TargetScrollY
	}
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}
