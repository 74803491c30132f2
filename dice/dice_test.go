package dice

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidSides(t *testing.T) {
	for _, sides := range []int{-1, 0, 1} {
		if _, err := New(sides); !errors.Is(err, ErrInvalidSides) {
			t.Fatalf("expected ErrInvalidSides for %d sides, got %v", sides, err)
		}
	}
}

func TestRollStaysInRange(t *testing.T) {
	cases := []struct {
		name  string
		die   func() (*Die, error)
		sides int
	}{
		{"d4", D4, 4},
		{"d6", D6, 6},
		{"d8", D8, 8},
		{"d10", D10, 10},
		{"d12", D12, 12},
		{"d20", D20, 20},
		{"d100", D100, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.die()
			if err != nil {
				t.Fatalf("new die: %v", err)
			}
			if d.Sides() != tc.sides {
				t.Fatalf("expected %d sides, got %d", tc.sides, d.Sides())
			}
			for i := 0; i < 1000; i++ {
				if roll := d.Roll(); roll < 1 || roll > tc.sides {
					t.Fatalf("roll %d out of range [1, %d]", roll, tc.sides)
				}
			}
		})
	}
}

func TestRollPoolLengthAndRange(t *testing.T) {
	d, err := D10()
	if err != nil {
		t.Fatalf("new die: %v", err)
	}

	rolls := d.RollPool(5)
	if len(rolls) != 5 {
		t.Fatalf("expected 5 rolls, got %d", len(rolls))
	}
	for _, roll := range rolls {
		if roll < 1 || roll > 10 {
			t.Fatalf("roll %d out of range [1, 10]", roll)
		}
	}
}

func TestSeededDiceAreDeterministic(t *testing.T) {
	a, err := NewSeeded(6, 42)
	if err != nil {
		t.Fatalf("new seeded die: %v", err)
	}
	b, err := NewSeeded(6, 42)
	if err != nil {
		t.Fatalf("new seeded die: %v", err)
	}

	for i := 0; i < 100; i++ {
		if got, want := a.Roll(), b.Roll(); got != want {
			t.Fatalf("roll %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestRollCoversAllFaces(t *testing.T) {
	d, err := NewSeeded(6, 1)
	if err != nil {
		t.Fatalf("new seeded die: %v", err)
	}

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[d.Roll()] = true
	}
	for face := 1; face <= 6; face++ {
		if !seen[face] {
			t.Fatalf("face %d never rolled in 1000 attempts", face)
		}
	}
}
