package nprop

// Set assigns value at path, materializing missing intermediate
// containers. Intermediate nodes are kept containers: a field holding
// neither a Mapping nor a Sequence is destructively replaced with an
// empty Mapping before descending. A final Index segment grows the target
// Sequence with null placeholders until the index is reachable.
func Set(root any, path string, value any, opts ...Option) error {
	return setPath(root, path, value, newConfig(opts))
}

// SetEach applies Set to every path independently.
func SetEach(root any, paths []string, value any, opts ...Option) error {
	c := newConfig(opts)
	for _, p := range paths {
		if err := setPath(root, p, value, c); err != nil {
			return err
		}
	}
	return nil
}

func setPath(root any, path string, value any, c *config) error {
	segs := splitPath(path)
	cur := cursor{node: root}
	for _, raw := range segs[:len(segs)-1] {
		seg, err := parseSegment(raw, c.indexPrefix)
		if err != nil {
			return err
		}
		if seg.isIndex {
			sl, ok := cur.node.([]any)
			if !ok {
				sl = []any{}
				cur.coerce(sl)
			}
			for seg.index >= len(sl) {
				sl = append(sl, map[string]any{})
			}
			cur.put(sl)
			idx := seg.index
			cur = cursor{
				node:  sl[idx],
				store: func(v any) { sl[idx] = v },
			}
		} else {
			if !isFieldable(cur.node) {
				cur.coerce(map[string]any{})
			}
			if KindOf(readField(cur.node, seg.field, nil)) == KindScalar {
				writeField(cur.node, seg.field, map[string]any{})
			}
			parent, field := cur.node, seg.field
			cur = cursor{
				node:  readField(parent, field, nil),
				store: func(v any) { writeField(parent, field, v) },
			}
		}
	}

	last, err := parseSegment(segs[len(segs)-1], c.indexPrefix)
	if err != nil {
		return err
	}
	if last.isIndex {
		sl, ok := cur.node.([]any)
		if !ok {
			sl = []any{}
			cur.coerce(sl)
		}
		for last.index >= len(sl) {
			sl = append(sl, nil)
		}
		sl[last.index] = value
		cur.put(sl)
		return nil
	}
	writeField(cur.node, last.field, value)
	return nil
}
