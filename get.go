package nprop

// Get resolves path against root and returns the value there. An
// unresolvable path (including one ending on a null value) returns the
// WithDefault value, nil unless configured. When WithQuery is given and
// the resolved value is a Sequence, a new Sequence is returned holding
// only the Mapping/Record elements that match the query.
func Get(root any, path string, opts ...Option) (any, error) {
	return getPath(root, path, newConfig(opts))
}

// GetEach applies Get to every path, returning per-path results in the
// same order.
func GetEach(root any, paths []string, opts ...Option) ([]any, error) {
	c := newConfig(opts)
	res := make([]any, 0, len(paths))
	for _, p := range paths {
		v, err := getPath(root, p, c)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func getPath(root any, path string, c *config) (any, error) {
	cur, ok, err := walk(root, splitPath(path), false, c.indexPrefix)
	if err != nil {
		return nil, err
	}
	if !ok {
		return c.def, nil
	}
	if c.query == nil {
		return cur.node, nil
	}
	sl, isSeq := cur.node.([]any)
	if !isSeq {
		return cur.node, nil
	}
	out := make([]any, 0, len(sl))
	for _, item := range sl {
		if !isFieldable(item) {
			continue
		}
		m, err := c.eval().Match(item, c.query)
		if err != nil {
			return nil, err
		}
		if m {
			out = append(out, item)
		}
	}
	return out, nil
}

// Has reports whether every segment of path resolves to a present value.
// Unlike Get, a present field holding null counts as present when it is
// the final segment.
func Has(root any, path string, opts ...Option) (bool, error) {
	return hasPath(root, path, newConfig(opts))
}

// HasEach applies Has to every path, returning per-path results in the
// same order.
func HasEach(root any, paths []string, opts ...Option) ([]bool, error) {
	c := newConfig(opts)
	res := make([]bool, 0, len(paths))
	for _, p := range paths {
		ok, err := hasPath(root, p, c)
		if err != nil {
			return nil, err
		}
		res = append(res, ok)
	}
	return res, nil
}

func hasPath(root any, path string, c *config) (bool, error) {
	cur := root
	for _, raw := range splitPath(path) {
		seg, err := parseSegment(raw, c.indexPrefix)
		if err != nil {
			return false, err
		}
		if seg.isIndex {
			sl, ok := cur.([]any)
			if !ok || seg.index >= len(sl) {
				return false, nil
			}
			cur = sl[seg.index]
		} else {
			if !isFieldable(cur) || !hasField(cur, seg.field) {
				return false, nil
			}
			cur = readField(cur, seg.field, nil)
		}
	}
	return true, nil
}
