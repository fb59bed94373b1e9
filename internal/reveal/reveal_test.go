package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_LatchesOnce(t *testing.T) {
	list := NewList(Podcast, 3, true)
	card := list.Card(1)

	_, started := card.Observe(0.1)
	assert.False(t, started, "below threshold does not reveal")
	assert.False(t, card.Entered())

	e, started := card.Observe(0.5)
	require.True(t, started)
	assert.Equal(t, Rest, e.To)
	assert.Equal(t, 200*time.Millisecond, e.Delay)

	// Scroll away and back.
	for _, ratio := range []float64{0, 0.05, 0.9, 0, 1} {
		_, again := card.Observe(ratio)
		assert.False(t, again)
		assert.True(t, card.Entered(), "latch never resets")
	}
	assert.Equal(t, 1, card.Plays())
	assert.Equal(t, Rest, card.Pose())
}

func TestList_StaggerOrder(t *testing.T) {
	list := NewList(Journey, 4, true)
	entrances := list.Entrances()
	require.Len(t, entrances, 4)

	for i := 1; i < len(entrances); i++ {
		assert.Greater(t, entrances[i].Delay, entrances[i-1].Delay)
	}
	assert.Equal(t, Journey.Timing.BaseDelay, entrances[0].Delay)
	assert.Equal(t, Journey.Timing.BaseDelay+3*Journey.Timing.Increment, entrances[3].Delay)
}

func TestList_OnEnteredFiresPerCard(t *testing.T) {
	list := NewList(Podcast, 3, false)
	var seen []int
	list.OnEntered(func(e Entrance) { seen = append(seen, e.Index) })

	list.Card(2).Observe(1)
	list.Card(0).Observe(1)
	list.Card(2).Observe(1)

	assert.Equal(t, []int{2, 0}, seen)
}

func TestJourney_HiddenPose(t *testing.T) {
	even := Journey.Hidden(0, true)
	odd := Journey.Hidden(1, true)
	mobile := Journey.Hidden(1, false)

	assert.Equal(t, -100.0, even.X)
	assert.Equal(t, 100.0, odd.X)
	assert.Equal(t, -15.0, even.RotateY)
	assert.Zero(t, mobile.X)
	assert.Zero(t, mobile.RotateY)
	assert.Zero(t, even.Opacity)
}

func TestCard_HighlightIsIndependent(t *testing.T) {
	list := NewList(Journey, 2, true, "#FF4C29", "#007BFF")
	card := list.Card(0)

	card.Hover(true)
	assert.True(t, card.Highlighted())
	assert.Equal(t, Journey.Hidden(0, true), card.Pose(), "hover does not reveal")

	card.Observe(1)
	assert.Equal(t, 1.05, card.Pose().Scale)
	assert.Equal(t, "#FF4C29", card.Glow())

	card.Hover(false)
	assert.Equal(t, Rest, card.Pose())
	assert.Empty(t, card.Glow())
	assert.True(t, card.Entered(), "un-hovering leaves the entrance latched")

	card.Focus(true)
	assert.True(t, card.Highlighted())
}

func TestTiming_NegativeIndex(t *testing.T) {
	assert.Equal(t, Podcast.Timing.BaseDelay, Podcast.Timing.Delay(-3))
}

func TestTilt(t *testing.T) {
	rx, ry := Tilt(50, 50, 100, 100)
	assert.Zero(t, rx)
	assert.Zero(t, ry)

	rx, ry = Tilt(100, 0, 100, 100)
	assert.InDelta(t, MaxTilt, rx, 1e-9)
	assert.InDelta(t, MaxTilt, ry, 1e-9)

	rx, ry = Tilt(-40, 500, 100, 100)
	assert.InDelta(t, -MaxTilt, rx, 1e-9)
	assert.InDelta(t, -MaxTilt, ry, 1e-9)

	rx, ry = Tilt(10, 10, 0, 100)
	assert.Zero(t, rx)
	assert.Zero(t, ry)
}
