package domain

import "fmt"

// Size is the side length of the board.
const Size = 9

// Points is the number of intersections on the board.
const Points = Size * Size

// Coord is a point on the board. Both axes are in [0, Size).
type Coord struct {
    x, y uint8
}

// NewCoord returns the point at column x, row y. It panics if either axis
// is off the board.
func NewCoord(x, y int) Coord {
    if x < 0 || x >= Size || y < 0 || y >= Size {
        panic(fmt.Sprintf("domain: coordinate (%d,%d) off board", x, y))
    }
    return Coord{x: uint8(x), y: uint8(y)}
}

// CoordFromIndex is the inverse of Coord.Index.
func CoordFromIndex(i int) Coord {
    if i < 0 || i >= Points {
        panic(fmt.Sprintf("domain: index %d off board", i))
    }
    return Coord{x: uint8(i % Size), y: uint8(i / Size)}
}

func (c Coord) X() int { return int(c.x) }
func (c Coord) Y() int { return int(c.y) }

// Index returns the row-major index x + 9*y.
func (c Coord) Index() int { return int(c.x) + Size*int(c.y) }

// Neighbors returns the orthogonally adjacent points in the order left,
// up, right, down. Points off the board are skipped.
func (c Coord) Neighbors() []Coord {
    out := make([]Coord, 0, 4)
    if c.x > 0 {
        out = append(out, Coord{x: c.x - 1, y: c.y})
    }
    if c.y > 0 {
        out = append(out, Coord{x: c.x, y: c.y - 1})
    }
    if c.x < Size-1 {
        out = append(out, Coord{x: c.x + 1, y: c.y})
    }
    if c.y < Size-1 {
        out = append(out, Coord{x: c.x, y: c.y + 1})
    }
    return out
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.x, c.y) }

// AllCoords returns every point in index order.
func AllCoords() []Coord {
    out := make([]Coord, Points)
    for i := range out {
        out[i] = CoordFromIndex(i)
    }
    return out
}
