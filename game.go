package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	hudX = 8
	hudY = 16
)

// Game adapts a Simulation to ebiten's update/draw loop
type Game struct {
	sim    *engine.Simulation
	layout render.Layout
	config utils.Config
}

func newGame(config utils.Config, sim *engine.Simulation) *Game {
	return &Game{
		sim:    sim,
		layout: render.NewLayout(config.WindowWidth, config.WindowHeight, config.BoardWidth, config.BoardHeight),
		config: config,
	}
}

// Update runs once per tick and advances the board when the interval has elapsed
func (g *Game) Update() error {
	g.sim.Tick()
	return nil
}

// Draw renders the current board
func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawBoard(screenCanvas{dst: screen}, g.sim.Board(), g.layout)

	if g.config.ShowHUD {
		hud := fmt.Sprintf("Gen: %d | Living: %d | Status: %s",
			g.sim.Generation(), g.sim.Stats().ActiveCells, g.sim.Status())
		text.Draw(screen, hud, basicfont.Face7x13, hudX, hudY, color.White)
	}
}

// Layout keeps the logical screen at the configured window size
func (g *Game) Layout(_, _ int) (int, int) {
	return g.config.WindowWidth, g.config.WindowHeight
}

// screenCanvas draws onto an ebiten image
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) Clear() {
	c.dst.Fill(color.Black)
}

func (c screenCanvas) FillRect(r render.Rect, col color.Color) {
	vector.DrawFilledRect(c.dst, r.X, r.Y, r.Width, r.Height, col, false)
}

// runWindow opens the window and blocks until it is closed
func runWindow(config utils.Config, game *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(game); err != nil {
		return errors.Wrap(err, "[runWindow] failed to run window")
	}
	return nil
}
