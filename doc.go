// Package budgetquest implements the progression and rewards engine of a
// gamified personal budgeting application: users log income and expenses,
// fund savings goals ("quests"), and earn experience points, levels, coins,
// login streaks and one-time achievement badges for doing so.
//
// The core functionalities include:
//   - Level Curve: an exponential XP requirement per level, with eager
//     renormalization so a single large grant can jump several levels.
//   - Streak Tracking: a calendar-day state machine for running login
//     streaks, plus a weekly Mon..Sun completion vector, both derivable
//     from one activity log.
//   - Goal Ledger: funding progress, one-time completion detection, and
//     completion rewards frozen at goal creation time.
//   - Achievement Evaluation: a closed rule set over aggregate stats that
//     unlocks each badge at most once.
//   - Rewards Coordination: folding domain events (transaction logged, goal
//     funded, day visited, budget period closed) into a new player state and
//     a normalized RewardOutcome.
//
// The engine is pure computation over explicit inputs: it never reads the
// clock, never touches storage, and returns new state instead of mutating
// shared state. It is safe to use concurrently for different users; for a
// single user the caller must serialize the read-compute-write cycle (a
// lost XP grant is the price of racing it) and persist achievement unlocks
// behind a uniqueness constraint.
//
// This package serves as the foundational logic for the `bqs` command-line
// tool, which persists a JSONL event journal and derives the current player
// state by replaying it through the engine.
package budgetquest
