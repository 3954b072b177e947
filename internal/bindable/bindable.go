// Package bindable provides a small observable value holder. Screens use
// bindables to track shared client state (current beatmap, active ruleset)
// and to detach from it when they leave the navigation stack.
//
// Bindables are not safe for concurrent use; all mutation happens on the
// single presentation loop.
package bindable

// Bindable holds a value of type T and notifies subscribers on change.
type Bindable[T any] struct {
	value     T
	listeners []func(T)
	source    *Bindable[T]
	sourceIdx int
}

// New creates a Bindable initialized to v.
func New[T any](v T) *Bindable[T] {
	return &Bindable[T]{value: v}
}

// Get returns the current value.
func (b *Bindable[T]) Get() T {
	return b.value
}

// Set updates the value and notifies all subscribers.
func (b *Bindable[T]) Set(v T) {
	b.value = v
	for _, fn := range b.listeners {
		if fn != nil {
			fn(v)
		}
	}
}

// OnChange registers fn to run whenever the value changes.
// It returns an index usable with removeListener-style cleanup via Unbind;
// direct listeners registered here live as long as the bindable.
func (b *Bindable[T]) OnChange(fn func(T)) {
	b.listeners = append(b.listeners, fn)
}

// BindTo copies the source's current value into b and keeps b in sync with
// future changes to source. A bindable tracks at most one source; binding
// again replaces the previous subscription.
func (b *Bindable[T]) BindTo(source *Bindable[T]) {
	if source == nil || source == b {
		return
	}
	b.Unbind()
	b.source = source
	b.sourceIdx = len(source.listeners)
	source.listeners = append(source.listeners, func(v T) {
		b.Set(v)
	})
	b.Set(source.value)
}

// Unbind detaches b from its source, if any. The local value is kept.
func (b *Bindable[T]) Unbind() {
	if b.source == nil {
		return
	}
	// Clear rather than splice so sibling subscription indexes stay valid.
	if b.sourceIdx < len(b.source.listeners) {
		b.source.listeners[b.sourceIdx] = nil
	}
	b.source = nil
	b.sourceIdx = 0
}

// Bound reports whether b currently tracks a source.
func (b *Bindable[T]) Bound() bool {
	return b.source != nil
}
