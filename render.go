package fabric

import "github.com/hajimehoshi/ebiten/v2"

// Rendering lives outside this package. These conversions are the boundary:
// a renderer built on Ebitengine consumes cumulative transforms as
// ebiten.GeoM values.

// GeoM returns m as an ebiten.GeoM.
func (m Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// MatrixFromGeoM converts an ebiten.GeoM back to a [Matrix].
func MatrixFromGeoM(g ebiten.GeoM) Matrix {
	return Matrix{
		g.Element(0, 0),
		g.Element(1, 0),
		g.Element(0, 1),
		g.Element(1, 1),
		g.Element(0, 2),
		g.Element(1, 2),
	}
}
