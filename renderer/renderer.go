// Package renderer turns engine values into markdown reports for the CLI.
//
// Every renderer returns a markdown string; the caller decides whether to
// print it raw or through a terminal renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/budgetquest"
	"github.com/etnz/budgetquest/date"
)

// mdRenderer accumulates markdown output.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer { return &mdRenderer{Builder: &strings.Builder{}} }

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// progressBar renders a 10-slot text progress bar for a share in [0, 1].
func progressBar(share float64) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share * 10)
	return "`[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]`"
}

var weekdayLabels = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Status renders the player dashboard: level, XP progress toward the next
// level, coins, streak and the current week's activity.
func Status(s budgetquest.PlayerState, today date.Date) string {
	r := newRenderer()
	p := s.Progression
	need := budgetquest.Requirement(p.Level)

	r.Printf("# Level %d\n\n", p.Level)
	r.Printf("%s %d / %d XP · 🪙 %d coins\n\n", progressBar(float64(p.XP)/float64(need)), p.XP, need, p.Coins)

	if streak := s.Activity.Streak(today); streak > 0 {
		r.Printf("🔥 %d day streak\n\n", streak)
	} else {
		r.Printf("No active streak. Log something today to start one.\n\n")
	}

	week := s.Week.Rollover(today)
	r.Printf("| %s |\n", strings.Join(weekdayLabels[:], " | "))
	r.Printf("|%s\n", strings.Repeat(":---:|", 7))
	marks := make([]string, 7)
	for i, done := range week.Days {
		if done {
			marks[i] = "✅"
		} else {
			marks[i] = "·"
		}
	}
	r.Printf("| %s |\n", strings.Join(marks, " | "))

	renderGoalsSection(r, s.Goals, today)
	return r.String()
}

func renderGoalsSection(r *mdRenderer, goals []budgetquest.Goal, today date.Date) {
	var active []budgetquest.Goal
	for _, g := range goals {
		if budgetquest.Expire(g, today).Status == budgetquest.GoalActive {
			active = append(active, g)
		}
	}
	if len(active) == 0 {
		return
	}
	r.Printf("\n## Active Goals\n\n")
	for _, g := range active {
		r.Printf("- **%s** %s %s of %s (%s)\n",
			g.Title, progressBar(float64(g.Progress())/100), g.Current, g.Target, g.Progress())
	}
}

// Goals renders the full goal list, one section per status.
func Goals(goals []budgetquest.Goal, today date.Date) string {
	r := newRenderer()
	r.Printf("# Goals\n\n")
	if len(goals) == 0 {
		r.Printf("No goals yet.\n")
		return r.String()
	}
	r.Printf("| Goal | Progress | Saved | Target | Deadline | Status |\n")
	r.Printf("|:---|:---|---:|---:|:---|:---|\n")
	for _, g := range goals {
		g = budgetquest.Expire(g, today)
		deadline := "—"
		if !g.Deadline.IsZero() {
			deadline = g.Deadline.String()
		}
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			g.Title, progressBar(float64(g.Progress())/100), g.Current, g.Target, deadline, g.Status)
	}
	return r.String()
}

// Outcome renders the reward toast shown right after an event is applied.
func Outcome(out budgetquest.RewardOutcome) string {
	r := newRenderer()
	if out.XPGained > 0 || out.CoinsGained > 0 {
		r.Printf("**+%d XP**", out.XPGained)
		if out.CoinsGained > 0 {
			r.Printf(" · **+%d coins**", out.CoinsGained)
		}
		r.Printf("\n")
	}
	if out.LeveledUp {
		r.Printf("\n🎉 **Level up!** You reached level %d.\n", out.NewLevel)
	}
	if out.GoalCompleted {
		r.Printf("\n🏆 Goal completed!\n")
	}
	switch out.Streak {
	case budgetquest.StreakStarted:
		r.Printf("\n🔥 Streak started.\n")
	case budgetquest.StreakBroken:
		r.Printf("\n💔 Your %d day streak is over. Starting fresh.\n", out.PreviousStreak)
	}
	if out.WeekComplete {
		r.Printf("\n📅 Full week of activity, bonus earned!\n")
	}
	for _, t := range out.NewAchievements {
		info := t.Info()
		r.Printf("\n%s **%s** unlocked: %s\n", info.Icon, info.Title, info.Description)
	}
	return r.String()
}

// Achievements renders the badge gallery, unlocked badges first with their
// unlock date, the rest shown as locked.
func Achievements(unlocked []budgetquest.Achievement) string {
	r := newRenderer()
	r.Printf("# Achievements\n\n")

	on := make(map[budgetquest.AchievementType]date.Date, len(unlocked))
	for _, a := range unlocked {
		on[a.Type] = a.UnlockedAt
	}
	r.Printf("| | Badge | | Unlocked |\n")
	r.Printf("|:---:|:---|:---|:---|\n")
	for _, t := range budgetquest.AllAchievements {
		info := t.Info()
		if when, ok := on[t]; ok {
			r.Printf("| %s | **%s** | %s | %s |\n", info.Icon, info.Title, info.Description, when)
		} else {
			r.Printf("| 🔒 | %s | %s | |\n", info.Title, info.Description)
		}
	}
	r.Printf("\n%d of %d unlocked.\n", len(unlocked), len(budgetquest.AllAchievements))
	return r.String()
}
