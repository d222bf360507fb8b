package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDirection(t *testing.T) {
	cases := []struct {
		left, right, up, down bool
		want                  Direction
	}{
		{false, false, false, false, DirectionNone},
		{true, false, false, false, DirectionLeft},
		{false, true, false, false, DirectionRight},
		{false, false, true, false, DirectionUp},
		{false, false, false, true, DirectionDown},
		{true, false, true, false, DirectionUpLeft},
		{false, true, true, false, DirectionUpRight},
		{true, false, false, true, DirectionDownLeft},
		{false, true, false, true, DirectionDownRight},
		{true, true, false, false, DirectionNone},
		{false, false, true, true, DirectionNone},
		{true, true, true, false, DirectionUp},
		{true, true, false, true, DirectionDown},
		{true, false, true, true, DirectionLeft},
		{false, true, true, true, DirectionRight},
		{true, true, true, true, DirectionNone},
	}

	for _, c := range cases {
		got := ResolveDirection(c.left, c.right, c.up, c.down)
		assert.Equal(t, c.want, got, "l=%v r=%v u=%v d=%v", c.left, c.right, c.up, c.down)
	}
}

func TestDirectionUnit(t *testing.T) {
	for d := DirectionUp; d <= DirectionUpLeft; d++ {
		u := d.Unit()
		assert.False(t, u.X == 0 && u.Y == 0, "direction %s has no unit", d)
		// round trip through the resolver
		back := ResolveDirection(u.X < 0, u.X > 0, u.Y < 0, u.Y > 0)
		assert.Equal(t, d, back)
	}
	assert.Equal(t, Point{}, DirectionNone.Unit())
}
