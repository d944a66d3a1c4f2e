package objects

// Mode selects how the decoder treats input it does not recognize.
type Mode int

const (
	// Lenient skips unknown elements, unknown choice arms and malformed
	// optional leaves, logging each skip. Suitable for the live archives,
	// which routinely carry fields newer than any client.
	Lenient Mode = iota

	// Strict turns every unknown element into an *UnknownVariantError and
	// every unrecognized enumeration value into a *SchemaError. Malformed
	// optional leaves are still dropped with a warning: strictness governs
	// variants, not leaf garbage.
	Strict
)

// DefaultMaxDepth bounds element nesting during decode. Real records stay
// far below it; the bound exists so a maliciously recursive document fails
// cleanly instead of exhausting the stack.
const DefaultMaxDepth = 200

type options struct {
	mode     Mode
	maxDepth int
}

// Option adjusts codec behavior.
type Option func(*options)

// WithMode selects Lenient or Strict decoding.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithMaxDepth overrides the nesting bound. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{mode: Lenient, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
