package nprop

import "github.com/nestedprop/nprop/debug"

// Delete removes the element at path: a Sequence element in range shifts
// later elements left, a Mapping/Record field is removed if present. An
// absent parent or target is a no-op, as is removing an index directly
// from a Sequence root: the shortened slice has no parent slot to be
// installed in.
func Delete(root any, path string, opts ...Option) error {
	return deletePath(root, path, newConfig(opts))
}

// DeleteEach applies Delete to every path independently.
func DeleteEach(root any, paths []string, opts ...Option) error {
	c := newConfig(opts)
	for _, p := range paths {
		if err := deletePath(root, p, c); err != nil {
			return err
		}
	}
	return nil
}

// Unset is an alias for Delete.
func Unset(root any, path string, opts ...Option) error {
	return Delete(root, path, opts...)
}

// UnsetEach is an alias for DeleteEach.
func UnsetEach(root any, paths []string, opts ...Option) error {
	return DeleteEach(root, paths, opts...)
}

func deletePath(root any, path string, c *config) error {
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
	if debug.Op() {
		debug.Logf("delete %s in %v\n", last, parent.node)
	}
	if last.isIndex {
		sl, isSeq := parent.node.([]any)
		if !isSeq || last.index >= len(sl) {
			return nil
		}
		if parent.store == nil {
			// the shortened slice cannot be handed back through the
			// caller's root value; shifting in place would corrupt it
			return nil
		}
		parent.put(append(sl[:last.index], sl[last.index+1:]...))
		return nil
	}
	if isFieldable(parent.node) {
		deleteField(parent.node, last.field)
	}
	return nil
}
