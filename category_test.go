package tracker

import (
	"errors"
	"testing"
)

func TestCategoryRegistry_Create(t *testing.T) {
	r := NewCategoryRegistry()
	limit := A(200)

	if err := r.Create("Dining", &limit); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := r.Create("Dining", nil); !errors.Is(err, ErrDuplicateCategory) {
		t.Errorf("duplicate Create error = %v, want ErrDuplicateCategory", err)
	}

	c, ok := r.Get("Dining")
	if !ok || c.Limit == nil || !c.Limit.Equal(limit) {
		t.Errorf("Get(Dining) = %+v, %v", c, ok)
	}

	// Names are case-sensitive identity keys.
	if err := r.Create("dining", nil); err != nil {
		t.Errorf("Create(dining) should be distinct from Dining: %v", err)
	}
}

func TestCategoryRegistry_ListInCreationOrder(t *testing.T) {
	r := NewCategoryRegistry()
	for _, name := range []string{"Zoo", "Alpha", "Mid"} {
		if err := r.Create(name, nil); err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
	}

	var got []string
	for c := range r.All() {
		got = append(got, c.Name)
	}
	want := []string{"Zoo", "Alpha", "Mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("creation order = %v, want %v", got, want)
		}
	}
}

func TestCategoryRegistry_Delete(t *testing.T) {
	r := NewCategoryRegistry()
	if err := r.Delete("Ghost"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Delete(Ghost) error = %v, want ErrUnknownCategory", err)
	}

	r.Create("Dining", nil)
	r.Create("Rent", nil)
	if err := r.Delete("Dining"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if r.Has("Dining") {
		t.Error("Dining still present after delete")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}
