package nprop

// readField reads key from a Mapping or Record node, returning def when
// the node has no such field or is not field-addressable. It never fails.
func readField(node any, key string, def any) any {
	switch n := node.(type) {
	case map[string]any:
		if v, ok := n[key]; ok {
			return v
		}
		return def
	}
	if r, ok := AsRecord(node); ok {
		if v, ok := r.GetField(key); ok {
			return v
		}
	}
	return def
}

// writeField assigns key on a Mapping or Record node. Writes to other
// shapes are dropped.
func writeField(node any, key string, value any) {
	switch n := node.(type) {
	case map[string]any:
		n[key] = value
		return
	}
	if r, ok := AsRecord(node); ok {
		r.SetField(key, value)
	}
}

// hasField reports whether key is present on a Mapping or Record node.
func hasField(node any, key string) bool {
	switch n := node.(type) {
	case map[string]any:
		_, ok := n[key]
		return ok
	}
	if r, ok := AsRecord(node); ok {
		_, ok := r.GetField(key)
		return ok
	}
	return false
}

// deleteField removes key from a Mapping or Record node if present.
func deleteField(node any, key string) {
	switch n := node.(type) {
	case map[string]any:
		delete(n, key)
		return
	}
	if r, ok := AsRecord(node); ok {
		r.DeleteField(key)
	}
}
