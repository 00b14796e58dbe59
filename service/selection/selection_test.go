// service/selection/selection_test.go
package selection

import "testing"

func TestSelectAllThenToggle(t *testing.T) {
	c := New()
	candidates := []string{"a", "b", "c"}

	sel := c.SelectAll(candidates)
	if len(sel) != 3 {
		t.Fatalf("selectAll: got %d ids; want 3", len(sel))
	}
	if !c.IsFullySelected(candidates) {
		t.Fatal("all candidates selected, IsFullySelected should be true")
	}

	sel = c.Toggle("b")
	if len(sel) != 2 || !sel.Has("a") || !sel.Has("c") || sel.Has("b") {
		t.Fatalf("toggle b: got %v; want {a,c}", sel.IDs())
	}
	if c.IsFullySelected(candidates) {
		t.Fatal("IsFullySelected should be false after deselecting b")
	}
}

func TestToggleReturnsFreshSet(t *testing.T) {
	c := New()
	first := c.Toggle("a")
	second := c.Toggle("b")

	if len(first) != 1 || !first.Has("a") {
		t.Fatalf("earlier snapshot was mutated: %v", first.IDs())
	}
	if len(second) != 2 {
		t.Fatalf("got %v; want {a,b}", second.IDs())
	}
}

func TestIsFullySelected_EmptyCandidates(t *testing.T) {
	c := New()
	if c.IsFullySelected(nil) {
		t.Fatal("no candidates can never be fully selected")
	}
}

func TestPruneDropsDepartedIDs(t *testing.T) {
	c := New()
	c.SelectAll([]string{"a", "b", "c"})

	sel := c.Prune([]string{"a", "c"})
	if len(sel) != 2 || sel.Has("b") {
		t.Fatalf("prune: got %v; want {a,c}", sel.IDs())
	}

	sel = c.Prune(nil)
	if len(sel) != 0 {
		t.Fatalf("prune to empty list: got %v; want empty", sel.IDs())
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.SelectAll([]string{"x", "y"})
	if sel := c.Clear(); len(sel) != 0 {
		t.Fatalf("clear: got %v; want empty", sel.IDs())
	}
}
