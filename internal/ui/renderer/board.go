package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/common"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
)

// BoardRenderer draws the grid, walls and agents cell by cell
type BoardRenderer struct {
	cellSize int
	margin   int
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(cellSize, margin int) *BoardRenderer {
	return &BoardRenderer{cellSize: cellSize, margin: margin}
}

// PixelSize returns the on-screen size of the rendered grid.
func (br *BoardRenderer) PixelSize(g *core.Grid) (int, int) {
	w := g.W*(br.cellSize+br.margin) + br.margin
	h := g.H*(br.cellSize+br.margin) + br.margin
	return w, h
}

// Draw renders the grid and both agents on the supplied Ebiten screen.
// When met is true the meeting cell gets a highlight frame.
func (br *BoardRenderer) Draw(screen *ebiten.Image, g *core.Grid, a, b core.Agent, met bool) {
	if g == nil {
		return
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := core.NewCoordinate(x, y)

			fill := color.Color(common.CellColor)
			if g.IsBlocked(c) {
				fill = common.WallColor
			}
			br.fillCell(screen, c, fill)
		}
	}

	br.fillCell(screen, b.Pos, common.AgentBColor)
	br.fillCell(screen, a.Pos, common.AgentAColor)

	if met {
		br.frameCell(screen, a.Pos, common.MeetHighlight)
	}
}

func (br *BoardRenderer) cellOrigin(c core.Coordinate) (float64, float64) {
	x := float64(c.X*(br.cellSize+br.margin) + br.margin)
	y := float64(c.Y*(br.cellSize+br.margin) + br.margin)
	return x, y
}

func (br *BoardRenderer) fillCell(screen *ebiten.Image, c core.Coordinate, fill color.Color) {
	cell := ebiten.NewImage(br.cellSize, br.cellSize)
	cell.Fill(fill)

	op := &ebiten.DrawImageOptions{}
	x, y := br.cellOrigin(c)
	op.GeoM.Translate(x, y)
	screen.DrawImage(cell, op)
}

// frameCell draws a border inside the cell without covering its contents.
func (br *BoardRenderer) frameCell(screen *ebiten.Image, c core.Coordinate, fill color.Color) {
	const border = 4
	x, y := br.cellOrigin(c)

	horizontal := ebiten.NewImage(br.cellSize, border)
	horizontal.Fill(fill)
	vertical := ebiten.NewImage(border, br.cellSize)
	vertical.Fill(fill)

	top := &ebiten.DrawImageOptions{}
	top.GeoM.Translate(x, y)
	screen.DrawImage(horizontal, top)

	bottom := &ebiten.DrawImageOptions{}
	bottom.GeoM.Translate(x, y+float64(br.cellSize-border))
	screen.DrawImage(horizontal, bottom)

	left := &ebiten.DrawImageOptions{}
	left.GeoM.Translate(x, y)
	screen.DrawImage(vertical, left)

	right := &ebiten.DrawImageOptions{}
	right.GeoM.Translate(x+float64(br.cellSize-border), y)
	screen.DrawImage(vertical, right)
}
