package battle

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/emeraldfactory/battlecore/data"
)

// EventKind tags a LogEvent the way the spec's §6 Logging contract
// enumerates: damage dealt, status applied, stat stage changed, field
// timer ticked, battler fainted, switch occurred, move failed/missed,
// delayed effect scheduled/triggered.
type EventKind string

const (
	EventDamage         EventKind = "damage"
	EventHeal           EventKind = "heal"
	EventStatusApplied  EventKind = "status_applied"
	EventStatusCured    EventKind = "status_cured"
	EventStageChanged   EventKind = "stage_changed"
	EventFieldTick      EventKind = "field_tick"
	EventFainted        EventKind = "fainted"
	EventSwitch         EventKind = "switch"
	EventMoveFailed     EventKind = "move_failed"
	EventMoveMissed     EventKind = "move_missed"
	EventDelayedSchedule EventKind = "delayed_scheduled"
	EventDelayedTrigger EventKind = "delayed_triggered"
	EventHazard         EventKind = "hazard"
	EventNoOp           EventKind = "no_op"
)

// LogEvent is one entry in the Battle's append-only event log. Every
// field is optional except Turn/Kind/Battler; a field left at its zero
// value simply wasn't relevant to this event. Bson tags let a caller
// persist a battle's log the way the rest of this module's ancestry
// persists game state, but no storage layer is required to use the
// engine (see §6's "Persisted state layout: none required").
type LogEvent struct {
	Turn        int           `bson:"turn" json:"turn"`
	Kind        EventKind     `bson:"kind" json:"kind"`
	Battler     int           `bson:"battler" json:"battler"`
	Source      int           `bson:"source,omitempty" json:"source,omitempty"`
	Move        data.MoveID   `bson:"move,omitempty" json:"move,omitempty"`
	Amount      int           `bson:"amount,omitempty" json:"amount,omitempty"`
	Stat        StatIndex     `bson:"stat,omitempty" json:"stat,omitempty"`
	Delta       int           `bson:"delta,omitempty" json:"delta,omitempty"`
	Reason      string        `bson:"reason,omitempty" json:"reason,omitempty"`
	Crit        bool          `bson:"crit,omitempty" json:"crit,omitempty"`
	Effectiveness float64     `bson:"effectiveness,omitempty" json:"effectiveness,omitempty"`
}

// Log is the append-only event stream for one Battle.
type Log struct {
	id     bson.ObjectID
	events []LogEvent
}

// NewLog returns an empty log tagged with a fresh object id.
func NewLog() *Log {
	return &Log{id: bson.NewObjectID()}
}

// ID returns the log's stable identifier, useful as a correlation key
// when multiple battles run concurrently.
func (l *Log) ID() bson.ObjectID { return l.id }

func (l *Log) append(e LogEvent) {
	l.events = append(l.events, e)
}

// Events returns every recorded event in order. The returned slice must
// not be mutated by the caller.
func (l *Log) Events() []LogEvent {
	return l.events
}

// Since returns events recorded from turn >= turn onward, useful for a
// caller that wants only the latest turn's log.
func (l *Log) Since(turn int) []LogEvent {
	var out []LogEvent
	for _, e := range l.events {
		if e.Turn >= turn {
			out = append(out, e)
		}
	}
	return out
}
