package nprop

import (
	"fmt"
	"strconv"
	"strings"
)

// segment is one atomic component of a path: a field name or a sequence
// index.
type segment struct {
	field   string
	index   int
	isIndex bool
}

func (s segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.field
}

// parseSegment classifies a raw path segment. With an index prefix
// configured, a segment starting with that prefix is an Index and the
// remainder must parse as a non-negative integer. Without a prefix, a
// segment consisting entirely of digits is an Index. Everything else is a
// Field.
func parseSegment(raw, indexPrefix string) (segment, error) {
	switch {
	case indexPrefix != "" && strings.HasPrefix(raw, indexPrefix):
		idx, err := strconv.Atoi(raw[len(indexPrefix):])
		if err != nil || idx < 0 {
			return segment{}, fmt.Errorf("%w: %q", ErrMalformedIndex, raw)
		}
		return segment{index: idx, isIndex: true}, nil
	case indexPrefix == "" && isDigits(raw):
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return segment{}, fmt.Errorf("%w: %q", ErrMalformedIndex, raw)
		}
		return segment{index: idx, isIndex: true}, nil
	}
	return segment{field: raw}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitPath splits a dot-delimited path into raw segments. Segments are
// classified lazily during traversal, so a malformed index beyond the
// point where traversal stops is never reported.
func splitPath(path string) []string {
	return strings.Split(path, ".")
}
