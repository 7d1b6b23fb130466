package nprop

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nestedprop/nprop/debug"
)

// Query is a declarative predicate over a Mapping/Record document. Keys
// are logical operators ($and, $or, $not, $expr) or field names (dotted
// sub-paths allowed) mapped either to a literal for exact equality or to
// an operator mapping ($eq, $ne, $gt, $gte, $lt, $lte, $in, $nin, $len,
// $regex with $options). Sibling keys combine as an implicit $and.
type Query map[string]any

// asQuery converts a query given as either the named type or a plain
// Mapping.
func asQuery(v any) (Query, bool) {
	switch q := v.(type) {
	case Query:
		return q, true
	case map[string]any:
		return Query(q), true
	}
	return nil, false
}

// Evaluator evaluates queries against documents, caching compiled
// regular expressions and $expr programs across calls. The zero value is
// not usable; construct with NewEvaluator.
type Evaluator struct {
	mu       sync.RWMutex
	regexps  map[string]*regexp.Regexp
	programs map[string]*vm.Program
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		regexps:  make(map[string]*regexp.Regexp),
		programs: make(map[string]*vm.Program),
	}
}

var defaultEvaluator = NewEvaluator()

// Match reports whether doc satisfies q, using a shared evaluator.
func Match(doc any, q Query) (bool, error) {
	return defaultEvaluator.Match(doc, q)
}

// Match reports whether doc satisfies q. Keys are evaluated in sorted
// order so error reporting is deterministic.
func (e *Evaluator) Match(doc any, q Query) (bool, error) {
	if debug.Match() {
		debug.Logf("match %v against %v\n", doc, map[string]any(q))
	}
	for _, key := range sortedKeys(q) {
		ok, err := e.matchKey(doc, key, q[key])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (e *Evaluator) matchKey(doc any, key string, cond any) (bool, error) {
	switch key {
	case "$and":
		subs, ok := subQueries(cond)
		if !ok {
			return false, nil
		}
		for _, sub := range subs {
			m, err := e.matchSub(doc, sub)
			if err != nil {
				return false, err
			}
			if !m {
				return false, nil
			}
		}
		return true, nil
	case "$or":
		subs, ok := subQueries(cond)
		if !ok {
			return false, nil
		}
		for _, sub := range subs {
			m, err := e.matchSub(doc, sub)
			if err != nil {
				return false, err
			}
			if m {
				return true, nil
			}
		}
		return false, nil
	case "$not":
		m, err := e.matchSub(doc, cond)
		if err != nil {
			return false, err
		}
		return !m, nil
	case "$expr":
		return e.matchExpr(doc, cond)
	}
	if strings.HasPrefix(key, "$") {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedOperator, key)
	}

	resolved, err := Get(doc, key)
	if err != nil {
		return false, err
	}
	if ops, isOps := asQuery(cond); isOps {
		return e.matchOps(resolved, ops)
	}
	return equalValues(resolved, cond), nil
}

// matchSub evaluates a nested sub-query; a non-Mapping sub-query never
// matches.
func (e *Evaluator) matchSub(doc any, sub any) (bool, error) {
	q, ok := asQuery(sub)
	if !ok {
		return false, nil
	}
	return e.Match(doc, q)
}

// subQueries normalizes the operand of $and / $or to a list.
func subQueries(cond any) ([]any, bool) {
	switch l := cond.(type) {
	case []any:
		return l, true
	case []Query:
		out := make([]any, len(l))
		for i, q := range l {
			out[i] = q
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, q := range l {
			out[i] = q
		}
		return out, true
	}
	return nil, false
}

// matchOps requires every operator in ops to individually pass against
// the resolved document value.
func (e *Evaluator) matchOps(resolved any, ops Query) (bool, error) {
	for _, op := range sortedKeys(ops) {
		ok, err := e.matchOp(resolved, op, ops[op], ops)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (e *Evaluator) matchOp(resolved any, op string, arg any, ops Query) (bool, error) {
	switch op {
	case "$eq":
		return equalValues(resolved, arg), nil
	case "$ne":
		return !equalValues(resolved, arg), nil
	case "$gt", "$gte", "$lt", "$lte":
		if resolved == nil {
			// ordering against absence is never true
			return false, nil
		}
		c, ok := compareValues(resolved, arg)
		if !ok {
			return false, nil
		}
		switch op {
		case "$gt":
			return c > 0, nil
		case "$gte":
			return c >= 0, nil
		case "$lt":
			return c < 0, nil
		default:
			return c <= 0, nil
		}
	case "$in":
		return containsValue(arg, resolved), nil
	case "$nin":
		return !containsValue(arg, resolved), nil
	case "$len":
		n, ok := lengthOf(resolved)
		if !ok {
			return false, nil
		}
		if sub, isOps := asQuery(arg); isOps {
			return e.matchOps(n, sub)
		}
		return equalValues(n, arg), nil
	case "$regex":
		return e.matchRegex(resolved, arg, ops)
	case "$options":
		// consumed alongside $regex
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnsupportedOperator, op)
}

func (e *Evaluator) matchRegex(resolved, arg any, ops Query) (bool, error) {
	s, isText := resolved.(string)
	if !isText {
		return false, nil
	}
	pattern, isText := arg.(string)
	if !isText {
		return false, fmt.Errorf("$regex requires a string pattern, got %T", arg)
	}
	var flags string
	if o, ok := ops["$options"].(string); ok {
		if strings.ContainsRune(o, 'i') {
			flags += "i"
		}
		if strings.ContainsRune(o, 'm') {
			flags += "m"
		}
	}
	if flags != "" {
		pattern = "(?" + flags + ")" + pattern
	}
	re, err := e.compileRegex(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

func (e *Evaluator) compileRegex(pattern string) (*regexp.Regexp, error) {
	e.mu.RLock()
	re, ok := e.regexps[pattern]
	e.mu.RUnlock()
	if ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid $regex pattern %q: %v", pattern, err)
	}
	e.mu.Lock()
	e.regexps[pattern] = re
	e.mu.Unlock()
	return re, nil
}

// matchExpr evaluates an expr-lang expression with the document as
// environment, interpreting the result by truthiness.
func (e *Evaluator) matchExpr(doc any, cond any) (bool, error) {
	src, ok := cond.(string)
	if !ok {
		return false, fmt.Errorf("$expr requires a string expression, got %T", cond)
	}
	prg, err := e.compileExpr(src)
	if err != nil {
		return false, err
	}
	out, err := expr.Run(prg, doc)
	if err != nil {
		return false, err
	}
	return truth(out), nil
}

func (e *Evaluator) compileExpr(src string) (*vm.Program, error) {
	e.mu.RLock()
	prg, ok := e.programs[src]
	e.mu.RUnlock()
	if ok {
		return prg, nil
	}
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("invalid $expr expression %q: %v", src, err)
	}
	e.mu.Lock()
	e.programs[src] = prg
	e.mu.Unlock()
	return prg, nil
}

// sortedKeys returns the keys of q in sorted order.
func sortedKeys(q Query) []string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
