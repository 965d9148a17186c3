package btree

// Tracer observes structural changes of a Tree. Events carry positions only,
// never keys, so any key type can be traced.
// See pkg logger for a zap implementation.
type Tracer interface {
	// Split reports that a node at depth overflowed and was split in two.
	Split(depth int)
	// Merge reports that an underflowing node at depth was merged into a sibling.
	Merge(depth int)
	// Grow reports a root split; height is the new number of levels.
	Grow(height int)
	// Shrink reports that an empty root was dropped; height is the new number of levels.
	Shrink(height int)
}

// NopTracer is the default tracer and discards every event.
type NopTracer struct{}

func (NopTracer) Split(int) {}

func (NopTracer) Merge(int) {}

func (NopTracer) Grow(int) {}

func (NopTracer) Shrink(int) {}

type options struct {
	tracer Tracer
}

// Option configures a Tree at construction.
type Option func(*options)

// WithTracer installs a hook that is notified of splits, merges and height changes.
// A nil tracer keeps the default.
func WithTracer(tracer Tracer) Option {
	return func(o *options) {
		if tracer != nil {
			o.tracer = tracer
		}
	}
}
