package nprop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type server struct {
	Host  string
	Port  int
	Tags  []any
	Extra map[string]any

	hidden string
}

func TestAsRecordStructPointer(t *testing.T) {
	s := &server{Host: "db1", Port: 5432}
	rec, ok := AsRecord(s)
	if !ok {
		t.Fatal("expected struct pointer to adapt")
	}
	if v, ok := rec.GetField("Host"); !ok || v != "db1" {
		t.Errorf("GetField(Host) = (%v, %t)", v, ok)
	}
	if _, ok := rec.GetField("hidden"); ok {
		t.Error("unexported field should not be visible")
	}
	if _, ok := rec.GetField("Missing"); ok {
		t.Error("unknown field should not be present")
	}
}

func TestAsRecordRejects(t *testing.T) {
	for _, v := range []any{nil, 42, "x", server{}, (*server)(nil), map[string]any{}} {
		if _, ok := AsRecord(v); ok {
			t.Errorf("AsRecord(%#v) adapted, want rejection", v)
		}
	}
}

func TestRecordPathOperations(t *testing.T) {
	s := &server{
		Host:  "db1",
		Port:  5432,
		Extra: map[string]any{"zone": "eu"},
	}

	v, err := Get(s, "Extra.zone")
	if err != nil {
		t.Fatal(err)
	}
	if v != "eu" {
		t.Errorf("got %v, want eu", v)
	}

	if err := Set(s, "Port", 5433); err != nil {
		t.Fatal(err)
	}
	if s.Port != 5433 {
		t.Errorf("Port = %d, want 5433", s.Port)
	}

	if err := Set(s, "Extra.region", "us"); err != nil {
		t.Fatal(err)
	}
	if s.Extra["region"] != "us" {
		t.Errorf("Extra = %v", s.Extra)
	}

	ok, err := Has(s, "Host")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Has(Host) = false")
	}

	if err := Push(s, "Tags", "prod"); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]any{"prod"}, s.Tags); d != "" {
		t.Error(d)
	}
}

func TestRecordDeleteResetsField(t *testing.T) {
	s := &server{Host: "db1"}
	if err := Delete(s, "Host"); err != nil {
		t.Fatal(err)
	}
	if s.Host != "" {
		t.Errorf("Host = %q, want zero value", s.Host)
	}
	// struct fields cannot be removed, so presence survives the reset
	ok, err := Has(s, "Host")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Has(Host) = false after reset")
	}
}

func TestRecordSetIgnoresBadAssignments(t *testing.T) {
	s := &server{Port: 1}
	if err := Set(s, "Port", "not a number"); err != nil {
		t.Fatal(err)
	}
	if s.Port != 1 {
		t.Errorf("Port = %d, want untouched 1", s.Port)
	}
}

// registry implements Record directly, backed by a map.
type registry struct {
	m map[string]any
}

func (r *registry) GetField(name string) (any, bool) {
	v, ok := r.m[name]
	return v, ok
}

func (r *registry) SetField(name string, value any) {
	r.m[name] = value
}

func (r *registry) DeleteField(name string) {
	delete(r.m, name)
}

func TestRecordInterfaceImplementation(t *testing.T) {
	r := &registry{m: map[string]any{"a": map[string]any{"b": 1}}}

	v, err := Get(r, "a.b")
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Errorf("got %v, want 1", v)
	}

	if err := Set(r, "a.c", 2); err != nil {
		t.Fatal(err)
	}
	if err := Delete(r, "a.b"); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": map[string]any{"c": 2}}
	if d := cmp.Diff(want, r.m); d != "" {
		t.Error(d)
	}
}

func TestRecordsNestedInMappings(t *testing.T) {
	root := map[string]any{
		"servers": []any{
			&server{Host: "db1", Port: 1},
			&server{Host: "web1", Port: 2},
		},
	}
	v, err := Get(root, "servers.1.Host")
	if err != nil {
		t.Fatal(err)
	}
	if v != "web1" {
		t.Errorf("got %v, want web1", v)
	}

	items, err := FindAll(root["servers"].([]any), Query{"Host": map[string]any{"$regex": "^db"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d matches, want 1", len(items))
	}
}
