package hook

// #region once
// Once holds a batch of hook instances that may be handed out exactly once.
//
// Hook instances are not guaranteed to be copyable and may carry state from
// the call that consumed them, so an orchestrator that runs the same system
// several times must not reuse them. The first Take returns the batch; every
// later Take returns nil, leaving the slot empty for good.
type Once[H any] struct {
	items []H
	taken bool
}

// NewOnce wraps items in a single-use slot.
func NewOnce[H any](items []H) *Once[H] {
	return &Once[H]{items: items}
}

// Take returns the stored items on the first call and nil afterwards.
func (o *Once[H]) Take() []H {
	if o == nil || o.taken {
		return nil
	}
	o.taken = true
	items := o.items
	o.items = nil
	return items
}

// Taken reports whether the slot has already been emptied.
func (o *Once[H]) Taken() bool {
	return o == nil || o.taken
}

// #endregion once
