package budgetquest

import "testing"

func TestRequirement_ExponentialCurve(t *testing.T) {
	testCases := []struct {
		level int
		want  int
	}{
		{level: 1, want: 1000},
		{level: 2, want: 1500},
		{level: 3, want: 2250},
		{level: 4, want: 3375},
	}
	for _, tc := range testCases {
		if got := Requirement(tc.level); got != tc.want {
			t.Errorf("Requirement(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestApplyXP_ZeroIsIdentity(t *testing.T) {
	for level := 1; level <= 10; level++ {
		state := Progression{Level: level, XP: Requirement(level) - 1, Coins: 42}
		got, gained := ApplyXP(state, 0)
		if got != state || gained != 0 {
			t.Errorf("ApplyXP(%+v, 0) = %+v, %d, want identity", state, got, gained)
		}
	}
}

func TestApplyXP(t *testing.T) {
	testCases := []struct {
		name       string
		state      Progression
		amount     int
		want       Progression
		wantGained int
	}{
		{
			name:       "No level up",
			state:      Progression{Level: 1, XP: 100},
			amount:     200,
			want:       Progression{Level: 1, XP: 300},
			wantGained: 0,
		},
		{
			name:       "Exact threshold levels up to zero XP",
			state:      Progression{Level: 1, XP: 0},
			amount:     1000,
			want:       Progression{Level: 2, XP: 0},
			wantGained: 1,
		},
		{
			name:       "Single level up with remainder",
			state:      Progression{Level: 1, XP: 950},
			amount:     100,
			want:       Progression{Level: 2, XP: 50},
			wantGained: 1,
		},
		{
			name:       "Multi level jump from one large grant",
			state:      Progression{Level: 1, XP: 0},
			amount:     3000, // 1000 to leave L1, 1500 to leave L2, 500 left
			want:       Progression{Level: 3, XP: 500},
			wantGained: 2,
		},
		{
			name:       "Coins are untouched",
			state:      Progression{Level: 1, XP: 0, Coins: 7},
			amount:     10,
			want:       Progression{Level: 1, XP: 10, Coins: 7},
			wantGained: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, gained := ApplyXP(tc.state, tc.amount)
			if got != tc.want {
				t.Errorf("ApplyXP() state = %+v, want %+v", got, tc.want)
			}
			if gained != tc.wantGained {
				t.Errorf("ApplyXP() levelsGained = %d, want %d", gained, tc.wantGained)
			}
		})
	}
}

func TestApplyXP_NormalizationInvariant(t *testing.T) {
	// Whatever the grant, the resulting XP is strictly below the requirement
	// of the resulting level.
	state := NewProgression()
	for _, amount := range []int{1, 999, 1000, 1001, 5000, 123456} {
		var gained int
		state, gained = ApplyXP(state, amount)
		if state.XP >= Requirement(state.Level) {
			t.Fatalf("after granting %d (gained %d): xp %d >= requirement %d at level %d",
				amount, gained, state.XP, Requirement(state.Level), state.Level)
		}
	}
}

func TestApplyXP_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ApplyXP with negative amount should panic")
		}
	}()
	ApplyXP(NewProgression(), -1)
}
