package rgss

// Signal is a synchronous notification source. Subscribers are invoked in
// connection order each time Emit is called. The zero value is ready to use.
//
// Signals are single-threaded like the rest of rgss: Connect, Emit and
// Disconnect must all happen on the game loop goroutine.
type Signal[T any] struct {
	slots    []slot[T]
	nextID   uint32
	emitting int
	pruned   bool
}

type slot[T any] struct {
	id uint32
	fn func(T)
}

// disconnecter is implemented by every Signal instantiation so that a
// Connection does not need to carry the payload type.
type disconnecter interface {
	disconnect(id uint32)
}

// Connection is the cancellation handle returned by Signal.Connect. It is
// owned by the subscriber. The zero Connection is valid and disconnected.
type Connection struct {
	id  uint32
	sig disconnecter
}

// Disconnect unregisters the subscriber so it no longer fires. Calling
// Disconnect more than once, or on the zero Connection, is a no-op.
func (c *Connection) Disconnect() {
	if c.sig == nil {
		return
	}
	c.sig.disconnect(c.id)
	c.sig = nil
}

// Connected reports whether the handle still refers to a live subscription.
func (c *Connection) Connected() bool {
	return c.sig != nil
}

// Connect registers fn and returns its cancellation handle.
func (s *Signal[T]) Connect(fn func(T)) Connection {
	if fn == nil {
		panic("rgss: cannot connect nil func")
	}
	s.nextID++
	s.slots = append(s.slots, slot[T]{id: s.nextID, fn: fn})
	return Connection{id: s.nextID, sig: s}
}

// Emit invokes every connected subscriber with v. Subscribers may connect or
// disconnect during emission; newly connected ones fire from the next Emit.
func (s *Signal[T]) Emit(v T) {
	n := len(s.slots)
	s.emitting++
	for i := 0; i < n; i++ {
		if fn := s.slots[i].fn; fn != nil {
			fn(v)
		}
	}
	s.emitting--
	if s.emitting == 0 && s.pruned {
		s.compact()
	}
}

// Len returns the number of live subscribers.
func (s *Signal[T]) Len() int {
	count := 0
	for i := range s.slots {
		if s.slots[i].fn != nil {
			count++
		}
	}
	return count
}

func (s *Signal[T]) disconnect(id uint32) {
	for i := range s.slots {
		if s.slots[i].id != id {
			continue
		}
		if s.emitting > 0 {
			// Emit is walking the slice; clear in place and compact afterwards.
			s.slots[i].fn = nil
			s.pruned = true
			return
		}
		copy(s.slots[i:], s.slots[i+1:])
		s.slots[len(s.slots)-1] = slot[T]{}
		s.slots = s.slots[:len(s.slots)-1]
		return
	}
}

// compact drops slots cleared during emission. Uses copy+zero to avoid
// retaining dangling closures in the backing array.
func (s *Signal[T]) compact() {
	kept := s.slots[:0]
	for _, sl := range s.slots {
		if sl.fn != nil {
			kept = append(kept, sl)
		}
	}
	for i := len(kept); i < len(s.slots); i++ {
		s.slots[i] = slot[T]{}
	}
	s.slots = kept
	s.pruned = false
}
