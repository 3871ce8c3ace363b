package staffing

// Strategy selects how Assign resolves the staffing problem.
type Strategy int

const (
	// Greedy is the deterministic, non-backtracking default: it is fast and
	// predictable, but it can report ErrInsufficientStaff even when a
	// feasible staffing exists.
	Greedy Strategy = iota
	// Matching searches for a feasible assignment via augmenting paths,
	// succeeding in some cases Greedy reports as infeasible.
	Matching
)

// Option configures Assign.
type Option func(*config)

type config struct {
	strategy Strategy
}

func newConfig(opts ...Option) config {
	cfg := config{strategy: Greedy}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStrategy selects the staffing strategy. The default is Greedy.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}
