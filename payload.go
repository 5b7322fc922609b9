package holddrag

// MealID is the stable identifier carried by a drop target (a meal slot).
type MealID string

// Payload is the item carried by a gesture. It is either an EntryRef or a
// QuickAddRef; the set of variants is closed.
type Payload interface {
	// Origin returns the meal slot the item currently belongs to, if any.
	Origin() (MealID, bool)
	payload()
}

// EntryRef refers to an existing logged item being reassigned to another meal.
type EntryRef struct {
	EntryID string
	Meal    MealID
}

// Origin returns the meal the entry is logged under.
func (e EntryRef) Origin() (MealID, bool) { return e.Meal, true }

func (EntryRef) payload() {}

// QuickAddKind distinguishes the two kinds of reusable templates.
type QuickAddKind uint8

const (
	QuickAddMeal     QuickAddKind = iota // saved meal
	QuickAddLeftover                     // leftover portion
)

// String returns the kind name.
func (k QuickAddKind) String() string {
	if k == QuickAddLeftover {
		return "leftover"
	}
	return "meal"
}

// QuickAddRef refers to a reusable meal or leftover template being placed
// into a meal slot for the first time.
type QuickAddRef struct {
	TemplateID string
	Name       string
	Kind       QuickAddKind
}

// Origin reports no location: a template is not logged anywhere yet.
func (QuickAddRef) Origin() (MealID, bool) { return "", false }

func (QuickAddRef) payload() {}

// Resolves reports whether dropping p onto target changes anything, i.e.
// target differs from the payload's current location.
func Resolves(p Payload, target MealID) bool {
	if p == nil || target == "" {
		return false
	}
	origin, ok := p.Origin()
	return !ok || origin != target
}
