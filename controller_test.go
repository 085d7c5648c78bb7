package scrollhide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOffsetDerivesDirection(t *testing.T) {
	c := NewScrollController(100)

	var got []Direction
	c.AddListener(func(d Direction) { got = append(got, d) })

	c.SetOffset(160) // toward content end
	c.SetOffset(140) // back toward start
	c.SetOffset(140) // unchanged, must not notify
	c.SetOffset(0)

	require.Equal(t, []Direction{DirectionReverse, DirectionForward, DirectionForward}, got)
	assert.Equal(t, 0.0, c.Offset())
}

func TestMultipleListeners(t *testing.T) {
	c := NewScrollController(0)

	var a, b int
	c.AddListener(func(Direction) { a++ })
	c.AddListener(func(Direction) { b++ })

	c.SetOffset(10)
	c.SetOffset(20)

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestRemoveDetachesExactListener(t *testing.T) {
	c := NewScrollController(0)

	var a, b int
	subA := c.AddListener(func(Direction) { a++ })
	c.AddListener(func(Direction) { b++ })

	c.SetOffset(10)
	subA.Remove()
	c.SetOffset(20)
	c.SetOffset(30)

	assert.Equal(t, 1, a, "removed listener must not fire again")
	assert.Equal(t, 3, b, "remaining listener keeps firing")
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := NewScrollController(0)
	sub := c.AddListener(func(Direction) {})
	sub.Remove()
	require.NotPanics(t, sub.Remove)

	var n int
	c.AddListener(func(Direction) { n++ })
	c.SetOffset(5)
	assert.Equal(t, 1, n)
}

func TestRemoveDuringNotification(t *testing.T) {
	c := NewScrollController(0)

	var first, last int
	var sub *Subscription
	c.AddListener(func(Direction) { first++ })
	sub = c.AddListener(func(Direction) { sub.Remove() })
	c.AddListener(func(Direction) { last++ })

	c.SetOffset(10)
	c.SetOffset(20)

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, last, "self-removal must not skip later listeners")
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", DirectionForward.String())
	assert.Equal(t, "reverse", DirectionReverse.String())
	assert.Equal(t, "idle", DirectionIdle.String())
}
