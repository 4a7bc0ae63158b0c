package domain

import "fmt"

// Stone represents the state of a single point.
type Stone uint8

const (
    Empty Stone = iota
    Black
    White
)

// Opponent returns the other colour. It panics for Empty.
func (s Stone) Opponent() Stone {
    switch s {
    case Black:
        return White
    case White:
        return Black
    default:
        panic(fmt.Sprintf("domain: %v has no opponent", s))
    }
}

func (s Stone) String() string {
    switch s {
    case Empty:
        return "empty"
    case Black:
        return "black"
    case White:
        return "white"
    default:
        return fmt.Sprintf("Stone(%d)", uint8(s))
    }
}
