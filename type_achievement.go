package budgetquest

import (
	"fmt"

	"github.com/etnz/budgetquest/date"
)

// AchievementType is a typed string identifying one badge in the closed set
// of achievements. Using a closed set prevents a typo from silently minting
// an unrecognized badge kind.
type AchievementType string

const (
	AchFirstGoal    AchievementType = "first_goal"
	AchQuestMaster  AchievementType = "quest_master"
	AchLevel5       AchievementType = "level_5"
	AchLevel10      AchievementType = "level_10"
	AchStreak7      AchievementType = "streak_7"
	AchStreak30     AchievementType = "streak_30"
	AchSaver100     AchievementType = "saver_100"
	AchSaver1000    AchievementType = "saver_1000"
	AchBudgetKeeper AchievementType = "budget_keeper"
)

// AchievementInfo is the static display metadata of one badge.
type AchievementInfo struct {
	Title       string
	Description string
	Icon        string
}

// achievementInfos is the static lookup table for the closed badge set.
var achievementInfos = map[AchievementType]AchievementInfo{
	AchFirstGoal:    {Title: "Quest Beginner", Description: "Complete your first savings goal", Icon: "🎯"},
	AchQuestMaster:  {Title: "Quest Master", Description: "Complete 5 savings goals", Icon: "🏅"},
	AchLevel5:       {Title: "Rising Star", Description: "Reach level 5", Icon: "⭐"},
	AchLevel10:      {Title: "Budget Master", Description: "Reach level 10", Icon: "👑"},
	AchStreak7:      {Title: "Week Warrior", Description: "Maintain a 7-day login streak", Icon: "🔥"},
	AchStreak30:     {Title: "Month Champion", Description: "Maintain a 30-day login streak", Icon: "💪"},
	AchSaver100:     {Title: "Penny Pincher", Description: "Save $100 total", Icon: "💰"},
	AchSaver1000:    {Title: "Treasure Hunter", Description: "Save $1000 total", Icon: "💎"},
	AchBudgetKeeper: {Title: "Budget Guardian", Description: "Stay under budget for a full month", Icon: "🛡️"},
}

// AllAchievements lists every badge type in evaluation (and display) order.
var AllAchievements = []AchievementType{
	AchFirstGoal,
	AchQuestMaster,
	AchLevel5,
	AchLevel10,
	AchStreak7,
	AchStreak30,
	AchSaver100,
	AchSaver1000,
	AchBudgetKeeper,
}

// Info returns the static display metadata of the badge.
func (a AchievementType) Info() AchievementInfo { return achievementInfos[a] }

func (a AchievementType) String() string { return string(a) }

// ParseAchievementType parses a string into an AchievementType, rejecting
// anything outside the closed set.
func ParseAchievementType(s string) (AchievementType, error) {
	a := AchievementType(s)
	if _, ok := achievementInfos[a]; !ok {
		return "", fmt.Errorf("unknown achievement type: %q", s)
	}
	return a, nil
}

// Achievement is one unlocked badge: at most one record exists per type for
// a given user, and it is never mutated or deleted afterwards.
type Achievement struct {
	Type       AchievementType `json:"type"`
	UnlockedAt date.Date       `json:"unlockedAt"`
}

// AchievementSet is the set of badge types a user has already unlocked.
type AchievementSet map[AchievementType]struct{}

// NewAchievementSet builds a set from the given types.
func NewAchievementSet(types ...AchievementType) AchievementSet {
	s := make(AchievementSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has returns true if the badge type is in the set.
func (s AchievementSet) Has(t AchievementType) bool {
	_, ok := s[t]
	return ok
}
