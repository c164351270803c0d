// SPDX-License-Identifier: Unlicense OR MIT

// Command rects moves a rectangle over a cell grid with checked
// coordinate math: a move that would leave the unsigned coordinate
// space or the grid is rejected whole, never clamped or wrapped.
//
// Arrow keys move the rectangle and R resets it. The cell under the
// mouse is outlined, brighter when the rectangle contains it, and the
// center cell carries a marker. A rejected move flashes the rectangle.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	intmath "github.com/piot/int-math-go"
)

type game struct {
	grid   intmath.RectU // grid extent in cells, position (0,0)
	player intmath.RectU // cell coordinates
	cell   uint32        // pixel size of one cell
	flash  int           // frames left of the rejection flash
	title  string
}

func newGame(columns, rows, cell uint32) *game {
	return &game{
		grid:   intmath.NewRectU(0, 0, columns, rows),
		player: startRect(columns, rows),
		cell:   cell,
	}
}

func startRect(columns, rows uint32) intmath.RectU {
	return intmath.NewRectU(columns/2, rows/2, 3, 2)
}

func (g *game) Update() error {
	var delta intmath.VectorI
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		delta = intmath.NewVectorI(-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		delta = intmath.NewVectorI(1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		delta = intmath.NewVectorI(0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		delta = intmath.NewVectorI(0, 1)
	}
	if delta != (intmath.VectorI{}) {
		g.move(delta)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.player = startRect(g.grid.Size.X, g.grid.Size.Y)
		g.flash = 0
	}
	if g.flash > 0 {
		g.flash--
	}
	g.updateTitle()
	return nil
}

// move translates the player by one cell. A move that underflows the
// coordinate space or pushes the far corner past the grid leaves the
// player where it is and starts the flash.
func (g *game) move(delta intmath.VectorI) {
	moved, err := g.player.OffsetSigned(delta)
	if err != nil {
		g.flash = 8
		return
	}
	corner, err := moved.Position.Add(moved.Size)
	if err != nil || corner.X > g.grid.Size.X || corner.Y > g.grid.Size.Y {
		g.flash = 8
		return
	}
	g.player = moved
}

func (g *game) updateTitle() {
	t := fmt.Sprintf("rects  %v", g.player)
	if c, err := g.player.Center(); err == nil {
		t = fmt.Sprintf("rects  %v  center %v", g.player, c)
	}
	if t != g.title {
		g.title = t
		ebiten.SetWindowTitle(t)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff})

	cell := float32(g.cell)
	grid := color.RGBA{R: 0x30, G: 0x30, B: 0x3a, A: 0xff}
	for y := uint32(0); y < g.grid.Size.Y; y++ {
		for x := uint32(0); x < g.grid.Size.X; x++ {
			vector.StrokeRect(screen, float32(x)*cell, float32(y)*cell, cell, cell, 1, grid, false)
		}
	}

	clr := color.RGBA{R: 0x3c, G: 0xb4, B: 0x6e, A: 0xff}
	if g.flash > 0 {
		clr = color.RGBA{R: 0xd9, G: 0x4a, B: 0x4a, A: 0xff}
	}
	px, py := g.pixels(g.player.Position)
	vector.DrawFilledRect(screen, px, py, float32(g.player.Size.X)*cell, float32(g.player.Size.Y)*cell, clr, false)

	if c, err := g.player.Center(); err == nil {
		cx, cy := g.pixels(c)
		vector.DrawFilledRect(screen, cx+cell/4, cy+cell/4, cell/2, cell/2, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false)
	}

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 {
		hover := intmath.NewVectorU(uint32(mx), uint32(my)).Div(g.cell)
		if g.grid.Contains(hover) {
			outline := color.RGBA{R: 0x8a, G: 0x8a, B: 0x9a, A: 0xff}
			if g.player.Contains(hover) {
				outline = color.RGBA{R: 0xff, G: 0xd7, B: 0x5e, A: 0xff}
			}
			hx, hy := g.pixels(hover)
			vector.StrokeRect(screen, hx, hy, cell, cell, 2, outline, false)
		}
	}
}

func (g *game) pixels(v intmath.VectorU) (float32, float32) {
	return float32(v.X * g.cell), float32(v.Y * g.cell)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.grid.Size.X * g.cell), int(g.grid.Size.Y * g.cell)
}

func main() {
	columns := flag.Uint("columns", 24, "grid width in cells")
	rows := flag.Uint("rows", 16, "grid height in cells")
	cell := flag.Uint("cell", 24, "cell size in pixels")
	flag.Parse()

	g := newGame(uint32(*columns), uint32(*rows), uint32(*cell))
	ebiten.SetWindowSize(int(g.grid.Size.X*g.cell), int(g.grid.Size.Y*g.cell))
	ebiten.SetWindowTitle("rects")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
