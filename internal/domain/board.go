package domain

import (
    "fmt"
    "strings"
)

// Board is a snapshot of all 81 points. The zero value is the empty board.
// Board is a value type: assigning or cloning it never shares storage.
type Board struct {
    cells cells
}

// NewBoard returns an empty board.
func NewBoard() Board { return Board{} }

// Stone returns the stone at c.
func (b Board) Stone(c Coord) Stone { return b.cells.get(c.Index()) }

// SetStone overwrites the point at c.
func (b *Board) SetStone(c Coord, s Stone) { b.cells.set(c.Index(), s) }

// Clone returns an independent copy of b.
func (b Board) Clone() Board { return b }

// Equal reports whether every point of b and o matches.
func (b Board) Equal(o Board) bool { return b.cells == o.cells }

// Mask returns the set of points holding color.
func (b Board) Mask(color Stone) Mask {
    var m Mask
    for i := 0; i < Points; i++ {
        if b.cells.get(i) == color {
            m.Set(CoordFromIndex(i))
        }
    }
    return m
}

// Count returns the number of points holding color.
func (b Board) Count(color Stone) int {
    n := 0
    for i := 0; i < Points; i++ {
        if b.cells.get(i) == color {
            n++
        }
    }
    return n
}

// KillStones removes every opponent group adjacent to the stone at c that
// has no liberties and returns the number of stones removed.
func (b *Board) KillStones(c Coord) int {
    victim := b.Stone(c).Opponent()
    removed := 0
    for _, n := range c.Neighbors() {
        // a group touching c twice reads Empty on the second visit
        if b.Stone(n) == victim && !b.GroupHasLiberties(n) {
            removed += b.RemoveGroup(n)
        }
    }
    return removed
}

// GroupHasLiberties reports whether the group containing c touches at
// least one empty point. It panics if c is empty.
func (b Board) GroupHasLiberties(c Coord) bool {
    found := false
    b.walkGroup(c, func(Coord) {}, func(Coord) bool {
        found = true
        return false
    })
    return found
}

// Liberties returns the number of distinct empty points adjacent to the
// group containing c. It panics if c is empty.
func (b Board) Liberties(c Coord) int {
    var libs Mask
    b.walkGroup(c, func(Coord) {}, func(l Coord) bool {
        libs.Set(l)
        return true
    })
    return libs.Len()
}

// RemoveGroup clears the group containing c and returns its size. It
// panics if c is empty.
func (b *Board) RemoveGroup(c Coord) int {
    var members []Coord
    b.walkGroup(c, func(m Coord) { members = append(members, m) }, nil)
    for _, m := range members {
        b.SetStone(m, Empty)
    }
    return len(members)
}

// walkGroup visits each stone of the group containing start exactly once.
// onLiberty is called for every empty neighbour met; returning false stops
// the walk early.
func (b Board) walkGroup(start Coord, onStone func(Coord), onLiberty func(Coord) bool) {
    color := b.Stone(start)
    if color == Empty {
        panic(fmt.Sprintf("domain: no group at empty point %v", start))
    }

    var seen Mask
    seen.Set(start)
    stack := []Coord{start}
    for len(stack) > 0 {
        cur := stack[len(stack)-1]
        stack = stack[:len(stack)-1]
        onStone(cur)

        for _, n := range cur.Neighbors() {
            switch b.Stone(n) {
            case Empty:
                if onLiberty != nil && !onLiberty(n) {
                    return
                }
            case color:
                if !seen.Has(n) {
                    seen.Set(n)
                    stack = append(stack, n)
                }
            }
        }
    }
}

// String renders the board as nine rows of '.', 'X' (black) and 'O'
// (white), top row first.
func (b Board) String() string {
    var sb strings.Builder
    for y := 0; y < Size; y++ {
        for x := 0; x < Size; x++ {
            switch b.Stone(NewCoord(x, y)) {
            case Black:
                sb.WriteByte('X')
            case White:
                sb.WriteByte('O')
            default:
                sb.WriteByte('.')
            }
        }
        sb.WriteByte('\n')
    }
    return sb.String()
}
