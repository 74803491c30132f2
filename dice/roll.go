package dice

import (
	"errors"
	"sort"
)

// Outcome grades a d6 action roll.
type Outcome int

const (
	// OutcomeFailure: the highest die is 1-3.
	OutcomeFailure Outcome = iota
	// OutcomePartial: the highest die is 4 or 5.
	OutcomePartial
	// OutcomeSuccess: the highest die is 6.
	OutcomeSuccess
	// OutcomeCritical: at least two dice show 6.
	OutcomeCritical
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFailure:
		return "failure"
	case OutcomePartial:
		return "partial"
	case OutcomeSuccess:
		return "success"
	case OutcomeCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ErrNotD6 is returned when an action roll is attempted with a die that is
// not six-sided.
var ErrNotD6 = errors.New("dice: action rolls require a six-sided die")

// ActionResult holds a graded action roll and the dice that produced it, in
// roll order.
type ActionResult struct {
	Outcome Outcome
	Rolls   []int
}

// ActionRoll makes a d6 action roll with the given pool size.
//
// A pool of zero models an untrained action: two dice are rolled and the
// lowest counts, with no critical possible. A pool of one grades the single
// die. Larger pools grade the highest die, upgrading to a critical when two
// or more dice show 6.
func ActionRoll(d *Die, pool int) (ActionResult, error) {
	if d.Sides() != 6 {
		return ActionResult{}, ErrNotD6
	}

	switch {
	case pool <= 0:
		rolls := d.RollPool(2)
		return ActionResult{Outcome: gradeLowest(rolls), Rolls: rolls}, nil
	case pool == 1:
		roll := d.Roll()
		return ActionResult{Outcome: grade(roll), Rolls: []int{roll}}, nil
	default:
		rolls := d.RollPool(pool)
		return ActionResult{Outcome: gradePool(rolls), Rolls: rolls}, nil
	}
}

// grade grades a single d6 result.
func grade(roll int) Outcome {
	switch {
	case roll >= 6:
		return OutcomeSuccess
	case roll >= 4:
		return OutcomePartial
	default:
		return OutcomeFailure
	}
}

// gradePool grades a pool by its highest die; two sixes upgrade to a
// critical.
func gradePool(rolls []int) Outcome {
	sorted := make([]int, len(rolls))
	copy(sorted, rolls)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	if len(sorted) >= 2 && sorted[0] == 6 && sorted[1] == 6 {
		return OutcomeCritical
	}
	return grade(sorted[0])
}

// gradeLowest grades an untrained roll by its lowest die.
func gradeLowest(rolls []int) Outcome {
	lowest := rolls[0]
	for _, r := range rolls[1:] {
		if r < lowest {
			lowest = r
		}
	}
	return grade(lowest)
}
