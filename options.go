package nprop

type config struct {
	def         any
	indexPrefix string
	query       Query
	index       *int
	evaluator   *Evaluator
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *config) eval() *Evaluator {
	if c.evaluator != nil {
		return c.evaluator
	}
	return defaultEvaluator
}

// Option configures a path operation.
type Option func(*config)

// WithDefault sets the value Get returns when the path does not resolve.
func WithDefault(v any) Option {
	return func(c *config) { c.def = v }
}

// WithIndexPrefix marks segments starting with p as sequence indices.
// Without it, segments consisting entirely of digits are indices.
func WithIndexPrefix(p string) Option {
	return func(c *config) { c.indexPrefix = p }
}

// WithQuery makes Get filter a resolved Sequence down to the
// Mapping/Record elements matching q.
func WithQuery(q Query) Option {
	return func(c *config) { c.query = q }
}

// WithIndex makes Pull remove the element at exactly this position.
func WithIndex(i int) Option {
	return func(c *config) { c.index = &i }
}

// WithEvaluator runs query matching through e instead of the shared
// default evaluator.
func WithEvaluator(e *Evaluator) Option {
	return func(c *config) { c.evaluator = e }
}
