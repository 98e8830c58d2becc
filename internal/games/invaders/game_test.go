package invaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func inputOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"invaders", "invaders_classic"} {
		g, err := registry.Create(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, g.ID())
	}
}

func TestGameModes(t *testing.T) {
	campaign := New()
	campaign.Reset(testRuntime())
	assert.Equal(t, 3, campaign.Session().Config().Gameplay.MaxStage)
	assert.Len(t, campaign.Session().View().Enemies, 24)

	classic := NewClassic()
	classic.Reset(testRuntime())
	assert.Equal(t, 1, classic.Session().Config().Gameplay.MaxStage)
	assert.Len(t, classic.Session().View().Enemies, 32)
	assert.Equal(t, "Invaders (Classic)", classic.Title())
}

func TestIntentFromInput(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want Intent
	}{
		{"nothing", inputOf(), Intent{}},
		{"left", inputOf(core.ActionLeft), Intent{Move: MoveLeft}},
		{"right and fire", inputOf(core.ActionRight, core.ActionFire), Intent{Move: MoveRight, Fire: true}},
		{"both directions cancel", inputOf(core.ActionLeft, core.ActionRight), Intent{}},
		{"restart", inputOf(core.ActionRestart), Intent{Restart: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IntentFromInput(tc.in))
		})
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	res := g.Step(inputOf(core.ActionPause))
	require.True(t, res.State.Paused)
	tick := g.Session().Tick()

	for range 10 {
		g.Step(inputOf(core.ActionRight))
	}
	assert.Equal(t, tick, g.Session().Tick(), "paused game does not advance")

	res = g.Step(inputOf(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, tick+1, g.Session().Tick())
}

func TestGameStateMirrorsSession(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	killAll(g.Session())

	res := g.Step(inputOf())
	assert.Contains(t, res.Events, "stage_cleared")
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 1, res.State.Level)

	// Pause is ignored between stages
	res = g.Step(inputOf(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestGameRestartAction(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Session().lives = 1
	g.Session().enemyBullets = []Bullet{enemyShot(400, 530)}

	res := g.Step(inputOf())
	require.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)

	res = g.Step(inputOf(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 3, g.Session().Lives())
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Score: 0")
	assert.Contains(t, hud, "Stage: 1/3")
	assert.Contains(t, hud, "♥♥♥")
	assert.True(t, strings.ContainsRune(screen.String(), EnemyChar))
	assert.True(t, strings.ContainsRune(screen.String(), PlayerChar))

	// Enemies use the stage color
	found := false
	for y := 2; y < 24 && !found; y++ {
		for x := 0; x < 80; x++ {
			c := screen.GetCell(x, y)
			if c.Rune == EnemyChar {
				assert.Equal(t, core.ColorGreen, c.Color)
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestGameRenderBossBar(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Session().startStage(3, nil)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(1), "BOSS [")
	assert.Contains(t, screen.Row(1), "100%")
	assert.True(t, strings.ContainsRune(screen.String(), BossChar))
}

func TestGameRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	killAll(g.Session())
	g.Step(inputOf())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "STAGE 1 CLEAR")
	assert.Contains(t, screen.String(), "Next stage in 2...")
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW = 20
	g.Reset(rt)

	res := g.Step(inputOf(core.ActionFire))
	assert.Equal(t, uint64(0), g.Session().Tick())
	assert.False(t, res.State.GameOver)

	screen := core.NewScreen(20, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	for range 5 {
		g.Step(inputOf(core.ActionRight))
	}

	g.Resize(30, 10)
	res := g.Step(inputOf(core.ActionRight))
	assert.Equal(t, uint64(5), g.Ticks(), "too small: no simulation")
	assert.False(t, res.State.GameOver)

	g.Resize(120, 40)
	g.Step(inputOf(core.ActionRight))
	assert.Equal(t, uint64(6), g.Ticks())
	assert.Equal(t, 405.0, g.Session().View().Player.X)
}
