package nprop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeleteField(t *testing.T) {
	root := map[string]any{"a": map[string]any{"b": 1, "c": 2}}
	if err := Delete(root, "a.b"); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": map[string]any{"c": 2}}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	ok, err := Has(root, "a.b")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("path still present after Delete")
	}
}

func TestDeleteIndexShiftsLeft(t *testing.T) {
	root := map[string]any{"list": []any{"a", "b", "c"}}
	if err := Delete(root, "list.1"); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"list": []any{"a", "c"}}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteNoOps(t *testing.T) {
	root := map[string]any{"list": []any{"a"}, "n": 1}
	for _, p := range []string{
		"missing.x",  // absent parent
		"list.5",     // index out of range
		"n.x",        // parent is a scalar
		"list.x",     // field on a sequence
		"absent",     // absent field on the root
	} {
		if err := Delete(root, p); err != nil {
			t.Fatalf("Delete(%q): %v", p, err)
		}
	}
	want := map[string]any{"list": []any{"a"}, "n": 1}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("root changed by no-op deletes (-want +got):\n%s", diff)
	}
}

func TestDeleteIndexAtSequenceRoot(t *testing.T) {
	// a root Sequence has no parent slot, so the removal is refused
	// rather than leaving the caller a shifted slice of the old length
	root := []any{1, 2, 3}
	if err := Delete(root, "0"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{1, 2, 3}, root); diff != "" {
		t.Errorf("root corrupted (-want +got):\n%s", diff)
	}
}

func TestUnsetAlias(t *testing.T) {
	root := map[string]any{"a": 1, "b": 2}
	if err := Unset(root, "a"); err != nil {
		t.Fatal(err)
	}
	if err := UnsetEach(root, []string{"b"}); err != nil {
		t.Fatal(err)
	}
	if len(root) != 0 {
		t.Errorf("root = %v, want empty", root)
	}
}

func TestDeleteEach(t *testing.T) {
	root := map[string]any{"a": 1, "b": 2, "c": 3}
	if err := DeleteEach(root, []string{"a", "c"}); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"b": 2}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
