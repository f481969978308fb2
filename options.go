package stringqueue

// Option configures a Queue.
type Option func(*options)

type options struct {
	alloc *Allocator
}

func defaultOptions() options {
	return options{
		alloc: defaultAllocator,
	}
}

// WithAllocator makes the queue draw its sentinel and elements from a.
// A nil allocator leaves the default in place.
func WithAllocator(a *Allocator) Option {
	return func(opts *options) {
		if a != nil {
			opts.alloc = a
		}
	}
}
