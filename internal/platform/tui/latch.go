package tui

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// movementActions are treated as held for a few ticks after each key press.
// Terminals report key repeats but never key releases, so a held arrow key
// arrives as a stream of presses with gaps between them.
var movementActions = []core.Action{core.ActionLeft, core.ActionRight}

// maxQueuedShots bounds fire presses waiting for a tick, so a burst of key
// repeats does not keep shooting after the key is let go.
const maxQueuedShots = 2

// inputLatch turns key presses into per-tick input frames.
//
// Every fire press becomes one tick with fire set followed by one tick
// without it, which re-arms the fire gate between presses.
type inputLatch struct {
	hold     int                 // Ticks a movement press stays asserted
	held     map[core.Action]int // Remaining ticks per movement action
	shots    int                 // Fire presses not yet delivered
	released bool                // Next tick must carry no fire
	pending  core.InputFrame     // One-shot actions for the next tick
}

// newInputLatch sizes the hold window to bridge typical key repeat gaps.
func newInputLatch(tickRate int) *inputLatch {
	return &inputLatch{
		hold:    core.Max(2, tickRate/15),
		held:    make(map[core.Action]int, len(movementActions)),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press.
func (l *inputLatch) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		l.held[core.ActionRight] = 0 // Last direction pressed wins
		l.held[a] = l.hold
	case core.ActionRight:
		l.held[core.ActionLeft] = 0
		l.held[a] = l.hold
	case core.ActionFire:
		if l.shots < maxQueuedShots {
			l.shots++
		}
	default:
		l.pending.Set(a)
	}
}

// Next returns the input for one tick and ages the held actions.
func (l *inputLatch) Next() core.InputFrame {
	frame := l.pending.Clone()
	l.pending.Clear()

	for _, a := range movementActions {
		if l.held[a] > 0 {
			frame.Set(a)
			l.held[a]--
		}
	}

	switch {
	case l.released:
		l.released = false
	case l.shots > 0:
		frame.Set(core.ActionFire)
		l.shots--
		l.released = true
	}
	return frame
}

// Reset drops everything held or pending.
func (l *inputLatch) Reset() {
	clear(l.held)
	l.shots = 0
	l.released = false
	l.pending.Clear()
}
