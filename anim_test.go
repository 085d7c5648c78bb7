package scrollhide

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeightAnimRetargetFromCurrent(t *testing.T) {
	t0 := time.Unix(0, 0)
	a := heightAnim{from: 72, to: 72}

	a.retarget(t0, 0, 300*time.Millisecond)
	assert.InDelta(t, 48.0, a.value(t0.Add(100*time.Millisecond)), 1e-9)

	// Reverse at one-third: restart from 48, not from 0.
	a.retarget(t0.Add(100*time.Millisecond), 72, 300*time.Millisecond)
	assert.InDelta(t, 48.0, a.value(t0.Add(100*time.Millisecond)), 1e-9)
	assert.InDelta(t, 60.0, a.value(t0.Add(250*time.Millisecond)), 1e-9)
	assert.Equal(t, 72.0, a.value(t0.Add(time.Second)))
}

func TestHeightAnimZeroDuration(t *testing.T) {
	t0 := time.Unix(0, 0)
	a := heightAnim{}
	a.retarget(t0, 40, 0)
	assert.Equal(t, 40.0, a.value(t0))
	assert.True(t, a.settled(t0))
}

func TestHeightAnimClampsBeforeStart(t *testing.T) {
	t0 := time.Unix(100, 0)
	a := heightAnim{}
	a.retarget(t0, 30, 300*time.Millisecond)
	assert.Equal(t, 0.0, a.value(t0.Add(-time.Second)))
}
