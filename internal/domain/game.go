package domain

import "errors"

// Errors returned by domain operations.
var (
    ErrOccupied   = errors.New("point occupied")
    ErrSuicide    = errors.New("suicide")
    ErrRepetition = errors.New("position repeats an earlier one")
    ErrNoHistory  = errors.New("nothing to undo")
)

// position is one history entry: the board after a move and the number
// of stones that move captured.
type position struct {
    board    Board
    captured int
}

// Game holds the full history of a match. The last entry is the current
// position. History is never empty.
type Game struct {
    history []position
    seen    map[cells]struct{}
    // offset is 1 when the first position has White to move.
    offset        int
    blackCaptures int
    whiteCaptures int
}

// New returns a game on an empty board with Black to move.
func New() *Game {
    return NewFromBoard(NewBoard(), Black)
}

// NewFromBoard starts a game from b with toMove to play. Capture counts
// start at zero. It panics if toMove is Empty.
func NewFromBoard(b Board, toMove Stone) *Game {
    g := &Game{
        history: []position{{board: b}},
        seen:    map[cells]struct{}{b.cells: {}},
    }
    switch toMove {
    case Black:
    case White:
        g.offset = 1
    default:
        panic("domain: game must start with black or white to move")
    }
    return g
}

// Play places a stone of the side to move at c. On error the game is
// left unchanged.
func (g *Game) Play(c Coord) error {
    next, captured, err := g.try(c)
    if err != nil {
        return err
    }
    if g.Turn() == Black {
        g.blackCaptures += captured
    } else {
        g.whiteCaptures += captured
    }
    g.history = append(g.history, position{board: next, captured: captured})
    g.seen[next.cells] = struct{}{}
    return nil
}

// IsLegal reports whether Play(c) would succeed, without changing the game.
func (g *Game) IsLegal(c Coord) error {
    _, _, err := g.try(c)
    return err
}

// LegalMoves returns every point the side to move may play, in index order.
func (g *Game) LegalMoves() []Coord {
    var out []Coord
    for _, c := range AllCoords() {
        if g.IsLegal(c) == nil {
            out = append(out, c)
        }
    }
    return out
}

// try plays c on a clone of the current board.
func (g *Game) try(c Coord) (Board, int, error) {
    cur := g.Board()
    if cur.Stone(c) != Empty {
        return Board{}, 0, ErrOccupied
    }

    next := cur.Clone()
    next.SetStone(c, g.Turn())
    captured := next.KillStones(c)
    if !next.GroupHasLiberties(c) {
        return Board{}, 0, ErrSuicide
    }
    // seen holds exactly the boards in history; the packed words are an
    // exact encoding so a hit is a real repetition.
    if _, dup := g.seen[next.cells]; dup {
        return Board{}, 0, ErrRepetition
    }
    return next, captured, nil
}

// Undo takes back the last move.
func (g *Game) Undo() error {
    if len(g.history) <= 1 {
        return ErrNoHistory
    }
    last := g.history[len(g.history)-1]
    g.history = g.history[:len(g.history)-1]
    delete(g.seen, last.board.cells)
    // the move being undone was made by the side now to move again
    if g.Turn() == Black {
        g.blackCaptures -= last.captured
    } else {
        g.whiteCaptures -= last.captured
    }
    return nil
}

// Moves returns the turn counter. Even counts are Black's turn.
func (g *Game) Moves() int { return g.offset + len(g.history) - 1 }

// Turn returns the colour to move.
func (g *Game) Turn() Stone {
    if g.Moves()%2 == 0 {
        return Black
    }
    return White
}

// Board returns the current position.
func (g *Game) Board() Board { return g.history[len(g.history)-1].board }

// History returns every position from the start of the game, oldest first.
func (g *Game) History() []Board {
    out := make([]Board, len(g.history))
    for i, p := range g.history {
        out[i] = p.board
    }
    return out
}

func (g *Game) BlackCaptures() int { return g.blackCaptures }
func (g *Game) WhiteCaptures() int { return g.whiteCaptures }

// Captures returns the cumulative captures made by color.
func (g *Game) Captures(color Stone) int {
    switch color {
    case Black:
        return g.blackCaptures
    case White:
        return g.whiteCaptures
    default:
        return 0
    }
}
