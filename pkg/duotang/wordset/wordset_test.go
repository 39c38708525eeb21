package wordset

import (
	"reflect"
	"testing"
)

func TestSetBasic(t *testing.T) {
	s := New("chair", "table")

	if !s.Contains("chair") {
		t.Error("'chair' should be in the set")
	}
	if s.Contains("lamp") {
		t.Error("'lamp' should not be in the set")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSetNormalizesCase(t *testing.T) {
	s := New("Chair")

	if !s.Contains("chair") {
		t.Error("lookup should be case-insensitive")
	}
	if !s.Contains("CHAIR") {
		t.Error("lookup should be case-insensitive")
	}
}

func TestSetAddRemove(t *testing.T) {
	s := New()
	s.Add("lamp")

	if !s.Contains("lamp") {
		t.Error("'lamp' should be in the set after Add")
	}

	s.Remove("lamp")
	if s.Contains("lamp") {
		t.Error("'lamp' should not be in the set after Remove")
	}
}

func TestSetIgnoresBlankEntries(t *testing.T) {
	s := New("", "  ", "chair")

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (blank entries skipped)", s.Len())
	}
}

func TestSetAll(t *testing.T) {
	s := New("banana", "apple", "cherry")

	want := []string{"apple", "banana", "cherry"}
	if got := s.All(); !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestSetIntersects(t *testing.T) {
	s := New("artifact.n.01", "object.n.01")

	if !s.Intersects([]string{"unrelated.n.01", "object.n.01"}) {
		t.Error("Intersects should report a shared member")
	}
	if s.Intersects([]string{"event.n.01"}) {
		t.Error("Intersects should be false with no shared member")
	}
	if s.Intersects(nil) {
		t.Error("Intersects(nil) should be false")
	}
}

func TestNilSetAccessors(t *testing.T) {
	var s *Set

	if s.Contains("chair") {
		t.Error("nil set should contain nothing")
	}
	if s.Len() != 0 {
		t.Error("nil set should have length 0")
	}
	if s.Intersects([]string{"chair"}) {
		t.Error("nil set should intersect nothing")
	}
}

func TestSetUnion(t *testing.T) {
	a := New("chair")
	b := New("table")

	u := a.Union(b)
	if !u.Contains("chair") || !u.Contains("table") {
		t.Error("union should contain members of both sets")
	}
	if u.Len() != 2 {
		t.Errorf("union Len() = %d, want 2", u.Len())
	}
}
