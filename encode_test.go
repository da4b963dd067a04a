package budgetquest

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func sampleJournal() []Event {
	return []Event{
		NewDayVisited(day(0)),
		NewTransactionLogged(day(0), Income, USD(2000), "salary", "august pay"),
		NewGoalCreated(day(1), "g1", "New laptop", USD(1000)),
		NewTransactionLogged(day(2), Expense, USD(120.50), "groceries", ""),
		NewGoalFunded(day(3), "g1", USD(400)),
		NewBudgetClosed(day(6), USD(1000), USD(800)),
	}
}

func TestJournalRoundTrip(t *testing.T) {
	journal := sampleJournal()

	var buf bytes.Buffer
	for _, ev := range journal {
		if err := EncodeEvent(&buf, ev); err != nil {
			t.Fatalf("EncodeEvent(%s) failed: %v", ev.What(), err)
		}
	}

	decoded, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatalf("DecodeJournal() failed: %v", err)
	}
	if len(decoded) != len(journal) {
		t.Fatalf("decoded %d events, want %d", len(decoded), len(journal))
	}
	for i, ev := range decoded {
		if ev.What() != journal[i].What() || ev.When() != journal[i].When() {
			t.Errorf("event %d decoded as %s on %s, want %s on %s",
				i, ev.What(), ev.When(), journal[i].What(), journal[i].When())
		}
	}

	// Spot-check concrete fields survive the trip.
	tx, ok := decoded[1].(TransactionLogged)
	if !ok {
		t.Fatalf("event 1 decoded as %T", decoded[1])
	}
	if tx.Type != Income || !tx.Amount.Equal(USD(2000)) || tx.Description != "august pay" {
		t.Errorf("decoded transaction = %+v", tx)
	}
	goal, ok := decoded[2].(GoalCreated)
	if !ok {
		t.Fatalf("event 2 decoded as %T", decoded[2])
	}
	if goal.GoalID != "g1" || !goal.Target.Equal(USD(1000)) {
		t.Errorf("decoded goal = %+v", goal)
	}
}

func TestReplay_Deterministic(t *testing.T) {
	journal := sampleJournal()

	first, err := Replay(journal)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	second, err := Replay(journal)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if first.Progression != second.Progression {
		t.Errorf("replays diverge: %+v vs %+v", first.Progression, second.Progression)
	}
	if !reflect.DeepEqual(first.Achievements, second.Achievements) {
		t.Errorf("achievement replays diverge: %v vs %v", first.Achievements, second.Achievements)
	}

	// Visit 2 + income 20 + goal created 50 + expense 10 + budget under 10 = 92 XP.
	if first.Progression.XP != 92 || first.Progression.Level != 1 {
		t.Errorf("progression = %+v, want level 1 xp 92", first.Progression)
	}
	// Visit 1 + budget under 5 = 6 coins.
	if first.Progression.Coins != 6 {
		t.Errorf("coins = %d, want 6", first.Progression.Coins)
	}
	if g := first.Goal("g1"); g == nil || !g.Current.Equal(USD(400)) {
		t.Errorf("goal state = %+v", g)
	}
}

func TestReplay_EncodedJournalMatchesInMemory(t *testing.T) {
	journal := sampleJournal()
	direct, err := Replay(journal)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	var buf bytes.Buffer
	for _, ev := range journal {
		if err := EncodeEvent(&buf, ev); err != nil {
			t.Fatalf("EncodeEvent() failed: %v", err)
		}
	}
	decoded, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatalf("DecodeJournal() failed: %v", err)
	}
	replayed, err := Replay(decoded)
	if err != nil {
		t.Fatalf("Replay() of decoded journal failed: %v", err)
	}

	if direct.Progression != replayed.Progression {
		t.Errorf("progression = %+v, want %+v", replayed.Progression, direct.Progression)
	}
	if len(direct.Goals) != len(replayed.Goals) || !direct.Goals[0].Current.Equal(replayed.Goals[0].Current) {
		t.Errorf("goals = %+v, want %+v", replayed.Goals, direct.Goals)
	}
}

func TestDecodeJournal_Errors(t *testing.T) {
	if _, err := DecodeJournal(strings.NewReader(`{"event":"time-travel","date":"2026-08-03"}` + "\n")); err == nil {
		t.Error("unknown event kind should fail")
	}
	if _, err := DecodeJournal(strings.NewReader("not json\n")); err == nil {
		t.Error("malformed line should fail")
	}

	// Empty lines are tolerated.
	events, err := DecodeJournal(strings.NewReader("\n\n"))
	if err != nil {
		t.Fatalf("DecodeJournal() failed on empty lines: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("decoded %d events from blank input", len(events))
	}
}

func TestReplay_Purchase(t *testing.T) {
	// Four budget wins earn 20 coins, enough for the hat.
	journal := []Event{
		NewBudgetClosed(day(0), USD(100), USD(50)),
		NewBudgetClosed(day(30), USD(100), USD(50)),
		NewBudgetClosed(day(60), USD(100), USD(50)),
		NewBudgetClosed(day(90), USD(100), USD(50)),
		NewAccessoryBought(day(91), "hat"),
	}
	s, err := Replay(journal)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if s.Progression.Coins != 0 {
		t.Errorf("coins = %d, want 0 after the purchase", s.Progression.Coins)
	}
	if len(s.Accessories) != 1 || s.Accessories[0] != "hat" {
		t.Errorf("accessories = %v, want the hat", s.Accessories)
	}

	// An unaffordable purchase fails the replay.
	if _, err := Replay([]Event{NewAccessoryBought(day(0), "hat")}); err == nil {
		t.Error("replaying an unaffordable purchase should fail")
	}
}

func TestReplay_StopsOnBadEvent(t *testing.T) {
	journal := []Event{
		NewGoalFunded(day(0), "never-created", USD(10)),
	}
	if _, err := Replay(journal); err == nil {
		t.Error("replaying a funding for an unknown goal should fail")
	}
}
