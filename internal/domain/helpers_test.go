package domain

import (
    "strings"
    "testing"
)

// mustBoard builds a board from up to nine rows of '.', 'X' and 'O',
// top row first. Short rows and missing rows are empty.
func mustBoard(t *testing.T, rows ...string) Board {
    t.Helper()
    if len(rows) > Size {
        t.Fatalf("board has %d rows", len(rows))
    }
    var b Board
    for y, row := range rows {
        row = strings.TrimSpace(row)
        if len(row) > Size {
            t.Fatalf("row %d too long: %q", y, row)
        }
        for x, ch := range row {
            switch ch {
            case 'X':
                b.SetStone(NewCoord(x, y), Black)
            case 'O':
                b.SetStone(NewCoord(x, y), White)
            case '.':
            default:
                t.Fatalf("row %d: bad cell %q", y, ch)
            }
        }
    }
    return b
}

// playMoves applies a sequence of (x, y) moves and fails on any error.
func playMoves(t *testing.T, g *Game, moves [][2]int) {
    t.Helper()
    for i, m := range moves {
        if err := g.Play(NewCoord(m[0], m[1])); err != nil {
            t.Fatalf("move %d (%v) failed: %v\n%s", i, m, err, g.Board())
        }
    }
}

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
    t.Helper()
    defer func() {
        if recover() == nil {
            t.Fatalf("%s: expected panic", name)
        }
    }()
    fn()
}
