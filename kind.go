package nprop

// Kind classifies the shape of a document node.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
	KindRecord
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindScalar:   "Scalar",
		KindMapping:  "Mapping",
		KindSequence: "Sequence",
		KindRecord:   "Record",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// IsContainer reports whether nodes of this kind have addressable children.
func (k Kind) IsContainer() bool {
	return k != KindScalar
}

// KindOf classifies a value. Anything that is not a map[string]any, an
// []any, or Record-adaptable is a Scalar (including nil).
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindScalar
	case map[string]any:
		return KindMapping
	case []any:
		return KindSequence
	}
	if _, ok := AsRecord(v); ok {
		return KindRecord
	}
	return KindScalar
}

// isFieldable reports whether v accepts field addressing (Mapping or Record).
func isFieldable(v any) bool {
	k := KindOf(v)
	return k == KindMapping || k == KindRecord
}
