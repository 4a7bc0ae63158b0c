package domain

import (
    "fmt"
    "math/bits"
)

// cells packs the 81 points at two bits each: 00 empty, 01 black,
// 10 white. 11 is never written.
type cells [3]uint64

const pointsPerWord = 32

func (v *cells) get(i int) Stone {
    w, shift := i/pointsPerWord, uint(i%pointsPerWord)*2
    switch (v[w] >> shift) & 0b11 {
    case 0b00:
        return Empty
    case 0b01:
        return Black
    case 0b10:
        return White
    default:
        panic(fmt.Sprintf("domain: illegal bit pattern at point %d", i))
    }
}

func (v *cells) set(i int, s Stone) {
    var pat uint64
    switch s {
    case Empty:
        pat = 0b00
    case Black:
        pat = 0b01
    case White:
        pat = 0b10
    default:
        panic(fmt.Sprintf("domain: cannot store %v", s))
    }
    w, shift := i/pointsPerWord, uint(i%pointsPerWord)*2
    v[w] = v[w]&^(0b11<<shift) | pat<<shift
}

// Mask is a set of points.
type Mask [2]uint64

func (m Mask) Has(c Coord) bool {
    i := c.Index()
    return m[i/64]&(1<<uint(i%64)) != 0
}

func (m *Mask) Set(c Coord) {
    i := c.Index()
    m[i/64] |= 1 << uint(i%64)
}

func (m *Mask) Clear(c Coord) {
    i := c.Index()
    m[i/64] &^= 1 << uint(i%64)
}

// Len returns the number of points in the set.
func (m Mask) Len() int {
    return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1])
}
