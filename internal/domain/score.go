package domain

// VoronoiScore estimates the area each colour controls by growing both
// colours into empty points until nothing changes. Contested points and
// points reachable from neither colour count for nobody. b is not modified.
func VoronoiScore(b Board) (black, white int) {
    grown := Grow(b)
    return grown.Count(Black), grown.Count(White)
}

// Grow returns a copy of b after the territory growth has settled.
func Grow(b Board) Board {
    out := b.Clone()
    order := AllCoords()
    for growStep(&out, order) {
    }
    return out
}

// growStep runs one pass over the points in order and reports whether any
// point changed. Every decision reads the masks taken at the start of the
// pass, so a point coloured during this pass does not spread until the
// next one and the visiting order does not matter.
func growStep(b *Board, order []Coord) bool {
    blacks, whites := b.Mask(Black), b.Mask(White)
    changed := false
    for _, c := range order {
        if blacks.Has(c) || whites.Has(c) {
            continue
        }
        nearBlack, nearWhite := false, false
        for _, n := range c.Neighbors() {
            nearBlack = nearBlack || blacks.Has(n)
            nearWhite = nearWhite || whites.Has(n)
        }
        switch {
        case nearBlack && !nearWhite:
            b.SetStone(c, Black)
            changed = true
        case nearWhite && !nearBlack:
            b.SetStone(c, White)
            changed = true
        }
    }
    return changed
}
