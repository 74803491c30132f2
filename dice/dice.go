// Package dice simulates tabletop dice.
//
// A Die produces uniform rolls in [1, sides]. Dice are seeded from
// crypto/rand by default so independent processes do not share sequences;
// NewSeeded exists for deterministic replays and tests.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// ErrInvalidSides is returned for dice with fewer than two sides.
var ErrInvalidSides = errors.New("dice: sides must be at least 2")

// Die is an n-sided die. Safe for concurrent use; rolls are serialized on an
// internal lock, so prefer one die per goroutine in hot paths.
type Die struct {
	sides int

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a die with the given number of sides, seeded from crypto/rand.
func New(sides int) (*Die, error) {
	seed, err := newSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(sides, seed)
}

// NewSeeded creates a deterministic die. Two dice with the same sides and
// seed produce the same roll sequence.
func NewSeeded(sides int, seed int64) (*Die, error) {
	if sides < 2 {
		return nil, ErrInvalidSides
	}
	return &Die{sides: sides, rng: rand.New(rand.NewSource(seed))}, nil
}

// D4 creates a four-sided die.
func D4() (*Die, error) { return New(4) }

// D6 creates a six-sided die.
func D6() (*Die, error) { return New(6) }

// D8 creates an eight-sided die.
func D8() (*Die, error) { return New(8) }

// D10 creates a ten-sided die.
func D10() (*Die, error) { return New(10) }

// D12 creates a twelve-sided die.
func D12() (*Die, error) { return New(12) }

// D20 creates a twenty-sided die.
func D20() (*Die, error) { return New(20) }

// D100 creates a hundred-sided die.
func D100() (*Die, error) { return New(100) }

// Sides returns the number of sides.
func (d *Die) Sides() int {
	return d.sides
}

// Roll returns one result in [1, sides].
func (d *Die) Roll() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(d.sides) + 1
}

// RollPool rolls the die n times and returns every result in roll order.
func (d *Die) RollPool(n int) []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	results := make([]int, n)
	for i := range results {
		results[i] = d.rng.Intn(d.sides) + 1
	}
	return results
}

// newSeed draws a high-entropy seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
