package nprop

import "github.com/nestedprop/nprop/debug"

// cursor is a position in a document tree together with the slot holding
// it in its parent container. store is nil at the root: a replacement of
// the root itself has nowhere to be installed and is lost to the caller.
type cursor struct {
	node  any
	store func(any)
}

// put installs v in the parent slot and makes it the current node.
func (c *cursor) put(v any) {
	c.node = v
	if c.store != nil {
		c.store(v)
	}
}

// coerce discards the current node in favor of an empty container of the
// required shape. The old container is cleared in place, so aliases of it
// observe the data loss even when no parent slot exists.
func (c *cursor) coerce(repl any) {
	switch old := c.node.(type) {
	case map[string]any:
		clear(old)
	case []any:
		clear(old)
	}
	c.put(repl)
}

// walk descends from root one segment at a time, resolving each segment
// against the current node. With create set, missing fields are
// initialized to empty Mappings, sequences are grown with empty Mappings
// up to the addressed index, and wrong-shaped nodes are destructively
// coerced. Without create, any unresolvable step reports ok == false.
//
// A descend that lands on a null value reports ok == false in either
// mode, even mid-path.
func walk(root any, segs []string, create bool, indexPrefix string) (cursor, bool, error) {
	cur := cursor{node: root}
	for _, raw := range segs {
		seg, err := parseSegment(raw, indexPrefix)
		if err != nil {
			return cursor{}, false, err
		}
		if debug.Walk() {
			debug.Logf("walk %s create=%v at %v\n", seg, create, cur.node)
		}
		if seg.isIndex {
			sl, ok := cur.node.([]any)
			if !ok {
				if !create {
					return cursor{}, false, nil
				}
				sl = []any{}
				cur.coerce(sl)
			}
			if create {
				for seg.index >= len(sl) {
					sl = append(sl, map[string]any{})
				}
				cur.put(sl)
			}
			if seg.index >= len(sl) {
				return cursor{}, false, nil
			}
			idx := seg.index
			cur = cursor{
				node:  sl[idx],
				store: func(v any) { sl[idx] = v },
			}
		} else {
			if !isFieldable(cur.node) {
				if !create {
					return cursor{}, false, nil
				}
				cur.coerce(map[string]any{})
			}
			if create && !hasField(cur.node, seg.field) {
				writeField(cur.node, seg.field, map[string]any{})
			}
			parent, field := cur.node, seg.field
			cur = cursor{
				node:  readField(parent, field, nil),
				store: func(v any) { writeField(parent, field, v) },
			}
		}
		if cur.node == nil {
			return cursor{}, false, nil
		}
	}
	return cur, true, nil
}
