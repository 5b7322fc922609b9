package ecs

import (
	"github.com/google/uuid"
	"github.com/phanxgames/holddrag"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// OutcomeEventType is the Donburi event type for holddrag gesture outcomes.
var OutcomeEventType = events.NewEventType[holddrag.OutcomeEvent]()

// MealEntry is a logged food entry living in one meal slot.
type MealEntry struct {
	ID       string
	Name     string
	Meal     holddrag.MealID
	Template string // quick-add template it was created from, if any
}

// MealEntryComponent holds a MealEntry on an entity.
var MealEntryComponent = donburi.NewComponentType[MealEntry]()

var entryQuery = donburi.NewQuery(filter.Contains(MealEntryComponent))

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an OutcomeStore backed by a Donburi world.
// Outcomes are published to OutcomeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) holddrag.OutcomeStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitOutcome(event holddrag.OutcomeEvent) {
	OutcomeEventType.Publish(s.world, event)
}

// ApplyDrops subscribes a handler that applies drop outcomes to the world:
// a dropped entry moves to the target meal, and a dropped quick-add
// template creates a new entry there.
func ApplyDrops(world donburi.World) {
	OutcomeEventType.Subscribe(world, applyDrop)
}

func applyDrop(w donburi.World, ev holddrag.OutcomeEvent) {
	if ev.Kind != holddrag.OutcomeDrop {
		return
	}
	switch p := ev.Payload.(type) {
	case holddrag.EntryRef:
		if e := FindEntry(w, p.EntryID); e != nil {
			MealEntryComponent.Get(e).Meal = ev.Target
		}
	case holddrag.QuickAddRef:
		e := w.Entry(w.Create(MealEntryComponent))
		MealEntryComponent.SetValue(e, MealEntry{
			ID:       uuid.NewString(),
			Name:     p.Name,
			Meal:     ev.Target,
			Template: p.TemplateID,
		})
	}
}

// FindEntry returns the entity holding the entry with the given id.
func FindEntry(w donburi.World, id string) *donburi.Entry {
	var found *donburi.Entry
	entryQuery.Each(w, func(e *donburi.Entry) {
		if found == nil && MealEntryComponent.Get(e).ID == id {
			found = e
		}
	})
	return found
}

// EntriesIn returns the entries logged in meal.
func EntriesIn(w donburi.World, meal holddrag.MealID) []MealEntry {
	var out []MealEntry
	entryQuery.Each(w, func(e *donburi.Entry) {
		if m := MealEntryComponent.Get(e); m.Meal == meal {
			out = append(out, *m)
		}
	})
	return out
}
