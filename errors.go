package nprop

import "errors"

var (
	// ErrMalformedIndex reports a path segment that carries the index
	// prefix but is not a non-negative integer after stripping it.
	ErrMalformedIndex = errors.New("malformed index segment")

	// ErrUnsupportedOperator reports an unrecognized $-operator in a
	// query. Unknown operators never fall back to equality matching.
	ErrUnsupportedOperator = errors.New("unsupported operator")
)
