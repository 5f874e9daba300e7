package rgss

// binding holds either an embedded default value or a borrowed, externally
// owned instance. current always resolves to exactly one of them.
type binding[T any] struct {
	owned    T
	external *T
}

// current returns the active instance.
func (b *binding[T]) current() *T {
	if b.external != nil {
		return b.external
	}
	return &b.owned
}

// bind switches to v, or back to the embedded default when v is nil.
func (b *binding[T]) bind(v *T) {
	b.external = v
}

// isExternal reports whether a borrowed instance is active.
func (b *binding[T]) isExternal() bool {
	return b.external != nil
}
