package budgetquest

import "math"

// Progression is a user's level-progress state.
//
// Invariant: XP is always strictly less than Requirement(Level). ApplyXP
// renormalizes eagerly, so display logic can rely on XP/Requirement being a
// valid progress fraction.
type Progression struct {
	Level int `json:"level"` // ≥ 1
	XP    int `json:"xp"`    // ≥ 0, < Requirement(Level)
	Coins int `json:"coins"` // ≥ 0
}

// NewProgression returns the starting state of a fresh user.
func NewProgression() Progression { return Progression{Level: 1} }

// Requirement returns the XP needed to leave the given level:
// floor(1000 * 1.5^(level-1)). The curve is deliberately steep so each
// level takes meaningfully longer than the previous one.
func Requirement(level int) int {
	return int(math.Floor(1000 * math.Pow(1.5, float64(level-1))))
}

// ApplyXP grants amount XP to the progression and returns the new state and
// the number of levels gained. A single large grant can cross several
// thresholds; the loop applies them all so the XP invariant holds on return.
//
// amount must be ≥ 0; callers validate inputs at the event boundary, a
// negative amount here is a programmer error.
func ApplyXP(p Progression, amount int) (Progression, int) {
	if amount < 0 {
		panic("negative XP amount")
	}
	if amount == 0 {
		return p, 0
	}
	p.XP += amount
	gained := 0
	for p.XP >= Requirement(p.Level) {
		p.XP -= Requirement(p.Level)
		p.Level++
		gained++
	}
	return p, gained
}

// AddCoins grants coins. There is no upper bound on the balance.
func AddCoins(p Progression, amount int) Progression {
	if amount < 0 {
		panic("negative coin amount")
	}
	p.Coins += amount
	return p
}
