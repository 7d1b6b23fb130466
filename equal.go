package nprop

import (
	"reflect"
	"strings"
	"unicode/utf8"
)

// equalValues reports structural equality, treating numeric values of
// different Go types as equal when they represent the same number.
func equalValues(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aok := toFloat64(a)
	bf, bok := toFloat64(b)
	return aok && bok && af == bf
}

// compareValues orders two values: numbers numerically, strings
// lexicographically. Anything else is unordered.
func compareValues(a, b any) (int, bool) {
	if af, ok := toFloat64(a); ok {
		bf, ok := toFloat64(b)
		if !ok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		}
		return 0, true
	}
	as, ok := a.(string)
	if !ok {
		return 0, false
	}
	bs, ok := b.(string)
	if !ok {
		return 0, false
	}
	return strings.Compare(as, bs), true
}

// containsValue reports membership of v in list: element equality for
// Sequences, substring containment for strings.
func containsValue(list, v any) bool {
	switch l := list.(type) {
	case []any:
		for _, item := range l {
			if equalValues(item, v) {
				return true
			}
		}
	case string:
		s, ok := v.(string)
		return ok && strings.Contains(l, s)
	}
	return false
}

// lengthOf returns the length of a value that has one: characters of a
// string, elements of a Sequence, fields of a Mapping.
func lengthOf(v any) (int, bool) {
	switch x := v.(type) {
	case string:
		return utf8.RuneCountInString(x), true
	case []any:
		return len(x), true
	case map[string]any:
		return len(x), true
	}
	return 0, false
}

// truth interprets an $expr result: nil, false, zero numbers, empty
// strings and empty containers are false, everything else is true.
func truth(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case map[string]any:
		return len(x) != 0
	case []any:
		return len(x) != 0
	}
	if f, ok := toFloat64(v); ok {
		return f != 0
	}
	return true
}
