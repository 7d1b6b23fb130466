package nprop

import "github.com/nestedprop/nprop/debug"

// Pull removes elements from the Sequence addressed by path. With
// WithIndex, exactly that position is removed; an out-of-range index
// falls back to value-based removal, or is a no-op when value is nil.
// Otherwise a Mapping value acts as a sub-query and every
// matching Mapping/Record element is removed, while a scalar value
// removes all structurally equal occurrences, preserving the relative
// order of survivors. A nil value without WithIndex, or a path not
// addressing a Sequence, is a no-op.
func Pull(root any, path string, value any, opts ...Option) error {
	return pullPath(root, path, value, newConfig(opts))
}

// PullEach applies Pull to every path independently.
func PullEach(root any, paths []string, value any, opts ...Option) error {
	c := newConfig(opts)
	for _, p := range paths {
		if err := pullPath(root, p, value, c); err != nil {
			return err
		}
	}
	return nil
}

func pullPath(root any, path string, value any, c *config) error {
	segs := splitPath(path)
	parent, ok, err := walk(root, segs[:len(segs)-1], false, c.indexPrefix)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	last, err := parseSegment(segs[len(segs)-1], c.indexPrefix)
	if err != nil {
		return err
	}

	// Locate the target Sequence and the slot holding it in the parent.
	var target []any
	var store func(any)
	if last.isIndex {
		sl, isSeq := parent.node.([]any)
		if !isSeq || last.index >= len(sl) {
			return nil
		}
		target, isSeq = sl[last.index].([]any)
		if !isSeq {
			return nil
		}
		idx := last.index
		store = func(v any) { sl[idx] = v }
	} else {
		if !isFieldable(parent.node) || !hasField(parent.node, last.field) {
			return nil
		}
		var isSeq bool
		target, isSeq = readField(parent.node, last.field, nil).([]any)
		if !isSeq {
			return nil
		}
		p, f := parent.node, last.field
		store = func(v any) { writeField(p, f, v) }
	}
	if debug.Op() {
		debug.Logf("pull from %v\n", target)
	}

	if c.index != nil {
		if i := *c.index; i >= 0 && i < len(target) {
			store(append(target[:i], target[i+1:]...))
			return nil
		}
		// an unusable index falls through to value-based removal
	}

	switch {
	case value == nil:
		// nothing to match

	default:
		q, isQuery := asQuery(value)
		if !isQuery {
			if _, isRec := AsRecord(value); isRec {
				// a Record value is not a usable sub-query; it matches nothing
				return nil
			}
			out := make([]any, 0, len(target))
			for _, v := range target {
				if !equalValues(v, value) {
					out = append(out, v)
				}
			}
			store(out)
			return nil
		}
		var matched []int
		for i, doc := range target {
			if !isFieldable(doc) {
				continue
			}
			m, err := c.eval().Match(doc, q)
			if err != nil {
				return err
			}
			if m {
				matched = append(matched, i)
			}
		}
		// remove in descending index order so earlier removals do not
		// shift indices still pending removal
		for j := len(matched) - 1; j >= 0; j-- {
			i := matched[j]
			target = append(target[:i], target[i+1:]...)
		}
		store(target)
	}
	return nil
}
