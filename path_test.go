package nprop

import (
	"errors"
	"testing"
)

func TestParseSegment(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		prefix  string
		want    segment
		wantErr bool
	}{
		{
			name: "field",
			raw:  "name",
			want: segment{field: "name"},
		},
		{
			name: "digits default to index",
			raw:  "12",
			want: segment{index: 12, isIndex: true},
		},
		{
			name: "mixed digits stay a field",
			raw:  "1a",
			want: segment{field: "1a"},
		},
		{
			name: "empty segment is a field",
			raw:  "",
			want: segment{field: ""},
		},
		{
			name:   "prefix index",
			raw:    "#3",
			prefix: "#",
			want:   segment{index: 3, isIndex: true},
		},
		{
			name:   "multi character prefix",
			raw:    "idx-7",
			prefix: "idx-",
			want:   segment{index: 7, isIndex: true},
		},
		{
			name:   "digits without prefix stay a field",
			raw:    "12",
			prefix: "#",
			want:   segment{field: "12"},
		},
		{
			name:    "prefix with non-numeric remainder",
			raw:     "#x",
			prefix:  "#",
			wantErr: true,
		},
		{
			name:    "prefix with empty remainder",
			raw:     "#",
			prefix:  "#",
			wantErr: true,
		},
		{
			name:    "prefix with negative index",
			raw:     "#-1",
			prefix:  "#",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSegment(tt.raw, tt.prefix)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedIndex) {
					t.Fatalf("got err %v, want ErrMalformedIndex", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	got := splitPath("a.b.0.c")
	want := []string{"a", "b", "0", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
