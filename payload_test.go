package holddrag

import "testing"

func TestResolves(t *testing.T) {
	entry := EntryRef{EntryID: "e1", Meal: "lunch"}
	quick := QuickAddRef{TemplateID: "t1", Name: "Soup", Kind: QuickAddLeftover}

	tests := []struct {
		name   string
		p      Payload
		target MealID
		want   bool
	}{
		{"entry to other meal", entry, "dinner", true},
		{"entry to own meal", entry, "lunch", false},
		{"entry to empty target", entry, "", false},
		{"quick add to any meal", quick, "lunch", true},
		{"quick add to empty target", quick, "", false},
		{"nil payload", nil, "lunch", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolves(tt.p, tt.target); got != tt.want {
				t.Errorf("Resolves(%v, %q) = %v, want %v", tt.p, tt.target, got, tt.want)
			}
		})
	}
}

func TestPayloadOrigin(t *testing.T) {
	if m, ok := (EntryRef{Meal: "snacks"}).Origin(); !ok || m != "snacks" {
		t.Errorf("EntryRef.Origin = %q, %v, want snacks, true", m, ok)
	}
	if _, ok := (QuickAddRef{}).Origin(); ok {
		t.Error("QuickAddRef should have no origin")
	}
}
