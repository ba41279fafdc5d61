package arena

// DefaultSlotCapacity is the number of block-metadata slots an Arena is built
// with unless overridden by WithSlotCapacity.
const DefaultSlotCapacity = 200

type config struct {
	slotCapacity int
}

// Option configures an Arena at construction time.
type Option func(*config)

// WithSlotCapacity sets the fixed number of block-metadata slots. The pool
// never grows past it; two slots are consumed up front by the sentinel and
// the initial hole. Minimum 2.
func WithSlotCapacity(n int) Option {
	return func(c *config) {
		c.slotCapacity = n
	}
}
