package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func TestLatchHoldsMovement(t *testing.T) {
	l := newInputLatch(60) // Hold for 4 ticks
	l.Press(core.ActionLeft)

	for i := range 4 {
		assert.True(t, l.Next().Has(core.ActionLeft), "tick %d", i)
	}
	assert.False(t, l.Next().Has(core.ActionLeft))
}

func TestLatchMinimumHold(t *testing.T) {
	l := newInputLatch(10)
	l.Press(core.ActionRight)

	assert.True(t, l.Next().Has(core.ActionRight))
	assert.True(t, l.Next().Has(core.ActionRight))
	assert.False(t, l.Next().Has(core.ActionRight))
}

func TestLatchFirePresses(t *testing.T) {
	tests := []struct {
		name    string
		presses int
		want    []bool // Fire per tick
	}{
		{"single press", 1, []bool{true, false, false}},
		{"double tap in one tick", 2, []bool{true, false, true, false, false}},
		{"repeat burst is capped", 5, []bool{true, false, true, false, false}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newInputLatch(60)
			for range tc.presses {
				l.Press(core.ActionFire)
			}
			for i, want := range tc.want {
				assert.Equal(t, want, l.Next().Has(core.ActionFire), "tick %d", i)
			}
		})
	}
}

func TestLatchQuickPressesBothShoot(t *testing.T) {
	l := newInputLatch(60)
	s := invaders.NewSession(config.DefaultInvadersConfig(), 60, 1)

	// Second press lands one tick after the first
	l.Press(core.ActionFire)
	s.Step(invaders.IntentFromInput(l.Next()))
	l.Press(core.ActionFire)
	for range 3 {
		s.Step(invaders.IntentFromInput(l.Next()))
	}

	assert.Len(t, s.View().PlayerBullets, 2)
}

func TestLatchLastDirectionWins(t *testing.T) {
	l := newInputLatch(60)
	l.Press(core.ActionLeft)
	l.Press(core.ActionRight)

	in := l.Next()
	assert.True(t, in.Has(core.ActionRight))
	assert.False(t, in.Has(core.ActionLeft))
}

func TestLatchOneShotActions(t *testing.T) {
	l := newInputLatch(60)
	l.Press(core.ActionPause)
	l.Press(core.ActionNone)

	assert.True(t, l.Next().Has(core.ActionPause))
	assert.False(t, l.Next().Has(core.ActionPause), "pause fires once")
}

func TestLatchReset(t *testing.T) {
	l := newInputLatch(60)
	l.Press(core.ActionRight)
	l.Press(core.ActionFire)
	l.Press(core.ActionRestart)
	l.Reset()

	in := l.Next()
	assert.False(t, in.Has(core.ActionRight))
	assert.False(t, in.Has(core.ActionFire))
	assert.False(t, in.Has(core.ActionRestart))
}
