package budgetquest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// This file persists the event journal as JSONL: one event per line, in the
// order they happened. The journal is the caller-side source of truth; the
// current PlayerState is always derived by replaying it through Apply, never
// stored. The format is human-readable and git-friendly.

// MarshalJSON implements the json.Marshaler interface for TransactionLogged.
func (e TransactionLogged) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("type", e.Type)
	w.Append("amount", e.Amount)
	w.Append("category", e.Category)
	w.Optional("description", e.Description)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for GoalCreated.
func (e GoalCreated) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("goalId", e.GoalID)
	w.Append("title", e.Title)
	w.Optional("description", e.Description)
	w.Append("target", e.Target)
	if !e.Deadline.IsZero() {
		w.Append("deadline", e.Deadline)
	}
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for GoalFunded.
func (e GoalFunded) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("goalId", e.GoalID)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for BudgetClosed.
func (e BudgetClosed) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("budget", e.Budget)
	w.Append("spent", e.Spent)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for AccessoryBought.
func (e AccessoryBought) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("item", e.Item)
	return w.MarshalJSON()
}

// EncodeEvent appends a single event to the journal stream.
func EncodeEvent(w io.Writer, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("could not encode %s event: %w", ev.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// DecodeJournal reads a JSONL stream of events and returns them in journal
// order, decoded into their concrete event structs.
func DecodeJournal(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Event EventType `json:"event"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify event in line %q: %w", string(lineBytes), err)
		}

		var decoded Event
		var err error
		switch identifier.Event {
		case EvtTransactionLogged:
			var e TransactionLogged
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case EvtGoalCreated:
			var e GoalCreated
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case EvtGoalFunded:
			var e GoalFunded
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case EvtDayVisited:
			var e DayVisited
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case EvtBudgetClosed:
			var e BudgetClosed
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case EvtAccessoryBought:
			var e AccessoryBought
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		default:
			return nil, fmt.Errorf("unknown event %q in line %q", identifier.Event, string(lineBytes))
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode %s event: %w", identifier.Event, err)
		}
		events = append(events, decoded)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read journal: %w", err)
	}
	return events, nil
}

// Replay folds a journal into the player state it produces. The same journal
// always replays to the same state. Purchases spend coins instead of earning
// rewards, so they are folded directly instead of going through Apply.
func Replay(events []Event) (PlayerState, error) {
	s := NewPlayerState()
	for i, ev := range events {
		var err error
		if buy, ok := ev.(AccessoryBought); ok {
			s.Progression, s.Accessories, err = Buy(s.Progression, s.Accessories, buy.Item)
		} else {
			s, _, err = Apply(s, ev)
		}
		if err != nil {
			return s, fmt.Errorf("replaying event %d (%s on %s): %w", i, ev.What(), ev.When(), err)
		}
	}
	return s, nil
}
