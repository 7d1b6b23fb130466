package nprop

// FindFirst scans items in order and returns the first one matching q.
// found is false when nothing matches.
func FindFirst(items []any, q Query, opts ...Option) (item any, found bool, err error) {
	e := newConfig(opts).eval()
	for _, it := range items {
		m, err := e.Match(it, q)
		if err != nil {
			return nil, false, err
		}
		if m {
			return it, true, nil
		}
	}
	return nil, false, nil
}

// FindAll returns every item matching q, preserving original relative
// order. The result is empty, never nil, when nothing matches.
func FindAll(items []any, q Query, opts ...Option) ([]any, error) {
	e := newConfig(opts).eval()
	res := make([]any, 0, len(items))
	for _, it := range items {
		m, err := e.Match(it, q)
		if err != nil {
			return nil, err
		}
		if m {
			res = append(res, it)
		}
	}
	return res, nil
}
