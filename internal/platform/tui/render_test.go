package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Lives:", core.ColorDefault)
	s.DrawTextColored(7, 0, "♥♥♥", core.ColorRed)
	s.DrawTextColored(2, 1, "▲", core.ColorBrightCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Lives:")
	assert.Contains(t, lines[0], "♥♥♥")
	assert.Contains(t, lines[1], "▲")
}

func TestStyleForDefault(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.ColorDefault).Render("x"))
}
