package treent

// Signal is a synchronous event source. Handlers run in connection order on
// the emitting goroutine.
type Signal[E any] struct {
	slots  []slot[E]
	nextID uint32
}

type slot[E any] struct {
	id uint32
	fn func(*E)
}

// Connection is a scoped subscription returned by Signal.Connect.
type Connection struct {
	disconnect func()
}

// Connect registers fn and returns the connection that releases it.
func (s *Signal[E]) Connect(fn func(*E)) *Connection {
	s.nextID++
	id := s.nextID
	s.slots = append(s.slots, slot[E]{id: id, fn: fn})
	return &Connection{disconnect: func() { s.remove(id) }}
}

// Emit calls every connected handler with e. Handlers connected or
// disconnected while Emit runs take effect from the next Emit.
func (s *Signal[E]) Emit(e *E) {
	if len(s.slots) == 0 {
		return
	}
	for _, sl := range append([]slot[E](nil), s.slots...) {
		sl.fn(e)
	}
}

// Len returns the number of connected handlers.
func (s *Signal[E]) Len() int {
	return len(s.slots)
}

// remove unregisters the handler with id.
// The entry is removed from the slice to avoid nil iteration waste.
func (s *Signal[E]) remove(id uint32) {
	for i := range s.slots {
		if s.slots[i].id == id {
			copy(s.slots[i:], s.slots[i+1:])
			s.slots[len(s.slots)-1] = slot[E]{}
			s.slots = s.slots[:len(s.slots)-1]
			return
		}
	}
}

// Disconnect releases the subscription. Safe to call more than once and on
// a nil connection.
func (c *Connection) Disconnect() {
	if c == nil || c.disconnect == nil {
		return
	}
	c.disconnect()
	c.disconnect = nil
}

// Connected reports whether the subscription is still active.
func (c *Connection) Connected() bool {
	return c != nil && c.disconnect != nil
}

// Connections holds scoped subscriptions that are released together.
type Connections struct {
	conns []*Connection
}

// Store keeps c until DisconnectAll.
func (cs *Connections) Store(c *Connection) {
	cs.conns = append(cs.conns, c)
}

// DisconnectAll releases every stored connection.
func (cs *Connections) DisconnectAll() {
	for i, c := range cs.conns {
		c.Disconnect()
		cs.conns[i] = nil
	}
	cs.conns = cs.conns[:0]
}

// Len returns the number of stored connections.
func (cs *Connections) Len() int {
	return len(cs.conns)
}
