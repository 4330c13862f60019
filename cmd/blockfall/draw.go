package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundDark  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	backgroundLight = color.RGBA{R: 24, G: 24, B: 24, A: 255}

	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// face is one shaded polygon of a bevelled cell.
type face struct {
	points     [4][2]float32
	saturation float32
	brightness float32
}

// bevelFaces splits a cell into a bright left and top edge, a dark right and
// bottom edge and a fully saturated centre.
func bevelFaces(x, y, size float32) []face {
	pad := float32(int(size) / 6)

	left, top := x, y
	right, bottom := x+size, y+size
	innerLeft, innerTop := left+pad, top+pad
	innerRight, innerBottom := right-pad, bottom-pad

	return []face{
		{[4][2]float32{{left, top}, {innerLeft, innerTop}, {innerLeft, innerBottom}, {left, bottom}}, 0.6, 1},
		{[4][2]float32{{right, top}, {innerRight, innerTop}, {innerRight, innerBottom}, {right, bottom}}, 1, 0.6},
		{[4][2]float32{{left, top}, {innerLeft, innerTop}, {innerRight, innerTop}, {right, top}}, 0.4, 1},
		{[4][2]float32{{left, bottom}, {innerLeft, innerBottom}, {innerRight, innerBottom}, {right, bottom}}, 1, 0.2},
		{[4][2]float32{{innerLeft, innerTop}, {innerLeft, innerBottom}, {innerRight, innerBottom}, {innerRight, innerTop}}, 1, 1},
	}
}

func fillPolygon(dst *ebiten.Image, points [4][2]float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}

	dst.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func drawCell(dst *ebiten.Image, snap tetris.Snapshot, offsetX float32, p tetris.Point, c tetris.Color) {
	size := float32(snap.Scale)
	x := offsetX + float32(p.X)*size
	y := float32(p.Y) * size

	for _, f := range bevelFaces(x, y, size) {
		fillPolygon(dst, f.points, c.HSB(f.saturation, f.brightness))
	}
}

func drawBackground(dst *ebiten.Image, snap tetris.Snapshot, offsetX float32) {
	size := float32(snap.Scale)
	for row := range snap.Rows {
		for col := range snap.Columns {
			clr := backgroundLight
			if (row+col)%2 == 0 {
				clr = backgroundDark
			}
			vector.DrawFilledRect(dst, offsetX+float32(col)*size, float32(row)*size, size, size, clr, false)
		}
	}
}

func drawLocked(dst *ebiten.Image, snap tetris.Snapshot, offsetX float32) {
	for row := range snap.Rows {
		for col := range snap.Columns {
			if shape := snap.At(col, row); shape != tetris.NoShape {
				drawCell(dst, snap, offsetX, tetris.Point{X: col, Y: row}, shape.Color())
			}
		}
	}
}

func drawGhost(dst *ebiten.Image, snap tetris.Snapshot, offsetX float32) {
	size := float32(snap.Scale)
	for _, p := range snap.Ghost {
		vector.DrawFilledRect(dst, offsetX+float32(p.X)*size, float32(p.Y)*size, size, size, ghostColor, false)
	}
}

func drawActive(dst *ebiten.Image, snap tetris.Snapshot, offsetX float32) {
	for _, p := range snap.Active {
		drawCell(dst, snap, offsetX, p, snap.ActiveColor)
	}
}
