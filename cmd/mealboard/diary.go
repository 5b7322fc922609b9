package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phanxgames/holddrag"
)

// Meal slots in display order.
var meals = []holddrag.MealID{"breakfast", "lunch", "dinner", "snacks"}

// Entry is a food logged under a meal.
type Entry struct {
	ID   string
	Name string
	Meal holddrag.MealID
}

// Template is a saved meal or leftover that can be placed into any meal.
type Template struct {
	ID   string
	Name string
	Kind holddrag.QuickAddKind
}

// Diary is one day of logged food. It is the only place entries change;
// the gesture engine just reports what the user asked for.
type Diary struct {
	entries   []Entry
	templates []Template
}

// NewDiary returns a diary seeded with a few entries and templates.
func NewDiary() *Diary {
	d := &Diary{}
	d.Add("Oatmeal", "breakfast")
	d.Add("Coffee", "breakfast")
	d.Add("Chicken salad", "lunch")
	d.Add("Apple", "snacks")
	d.templates = []Template{
		{ID: uuid.NewString(), Name: "Usual breakfast", Kind: holddrag.QuickAddMeal},
		{ID: uuid.NewString(), Name: "Pasta bake", Kind: holddrag.QuickAddLeftover},
		{ID: uuid.NewString(), Name: "Protein shake", Kind: holddrag.QuickAddMeal},
	}
	return d
}

// Add logs a new entry and returns it.
func (d *Diary) Add(name string, meal holddrag.MealID) Entry {
	e := Entry{ID: uuid.NewString(), Name: name, Meal: meal}
	d.entries = append(d.entries, e)
	return e
}

// Entries returns the entries logged under meal, in logging order.
func (d *Diary) Entries(meal holddrag.MealID) []Entry {
	var out []Entry
	for _, e := range d.entries {
		if e.Meal == meal {
			out = append(out, e)
		}
	}
	return out
}

// Entry returns the entry with the given id.
func (d *Diary) Entry(id string) (Entry, bool) {
	for _, e := range d.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Templates returns the quick-add templates.
func (d *Diary) Templates() []Template {
	return d.templates
}

// Move relocates an entry to another meal.
func (d *Diary) Move(id string, to holddrag.MealID) error {
	for i := range d.entries {
		if d.entries[i].ID == id {
			d.entries[i].Meal = to
			return nil
		}
	}
	return fmt.Errorf("no entry %q", id)
}

// Apply performs the change a resolved drop asks for and describes it.
func (d *Diary) Apply(p holddrag.Payload, to holddrag.MealID) (string, error) {
	switch p := p.(type) {
	case holddrag.EntryRef:
		e, ok := d.Entry(p.EntryID)
		if !ok {
			return "", fmt.Errorf("no entry %q", p.EntryID)
		}
		if err := d.Move(p.EntryID, to); err != nil {
			return "", err
		}
		return fmt.Sprintf("moved %s from %s to %s", e.Name, p.Meal, to), nil
	case holddrag.QuickAddRef:
		e := d.Add(p.Name, to)
		return fmt.Sprintf("added %s %s to %s", p.Kind, e.Name, to), nil
	}
	return "", fmt.Errorf("unsupported payload %T", p)
}

// Describe returns a label for p.
func (d *Diary) Describe(p holddrag.Payload) string {
	switch p := p.(type) {
	case holddrag.EntryRef:
		if e, ok := d.Entry(p.EntryID); ok {
			return e.Name
		}
		return p.EntryID
	case holddrag.QuickAddRef:
		return p.Name
	}
	return "?"
}
