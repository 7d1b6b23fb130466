package nprop

import "github.com/nestedprop/nprop/debug"

// Push appends value to the Sequence at path, materializing missing
// containers on the way. When the target is not a Sequence (including a
// freshly created empty Mapping), it is replaced entirely by a fresh
// one-element Sequence holding value.
func Push(root any, path string, value any, opts ...Option) error {
	return pushPath(root, path, value, newConfig(opts))
}

// PushEach applies Push to every path independently.
func PushEach(root any, paths []string, value any, opts ...Option) error {
	c := newConfig(opts)
	for _, p := range paths {
		if err := pushPath(root, p, value, c); err != nil {
			return err
		}
	}
	return nil
}

func pushPath(root any, path string, value any, c *config) error {
	cur, ok, err := walk(root, splitPath(path), true, c.indexPrefix)
	if err != nil {
		return err
	}
	if ok {
		if sl, isSeq := cur.node.([]any); isSeq {
			if debug.Op() {
				debug.Logf("push onto %v\n", sl)
			}
			cur.put(append(sl, value))
			return nil
		}
	}
	return setPath(root, path, []any{value}, c)
}
