package rgss

import "testing"

func TestSignalEmitOrder(t *testing.T) {
	var s Signal[int]
	var got []int
	s.Connect(func(v int) { got = append(got, v*10+1) })
	s.Connect(func(v int) { got = append(got, v*10+2) })

	s.Emit(3)
	if len(got) != 2 || got[0] != 31 || got[1] != 32 {
		t.Errorf("got %v, want [31 32]", got)
	}
}

func TestSignalDisconnect(t *testing.T) {
	var s Signal[struct{}]
	count := 0
	c := s.Connect(func(struct{}) { count++ })

	s.Emit(struct{}{})
	c.Disconnect()
	s.Emit(struct{}{})

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if c.Connected() {
		t.Error("Connected() = true after Disconnect")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSignalDisconnectIdempotent(t *testing.T) {
	var s Signal[struct{}]
	a := s.Connect(func(struct{}) {})
	s.Connect(func(struct{}) {})

	a.Disconnect()
	a.Disconnect()
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	var zero Connection
	zero.Disconnect() // must not panic
	if zero.Connected() {
		t.Error("zero Connection reports connected")
	}
}

func TestSignalDisconnectDuringEmit(t *testing.T) {
	var s Signal[struct{}]
	var order []string
	var b Connection
	s.Connect(func(struct{}) {
		order = append(order, "a")
		b.Disconnect()
	})
	b = s.Connect(func(struct{}) { order = append(order, "b") })
	s.Connect(func(struct{}) { order = append(order, "c") })

	s.Emit(struct{}{})
	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("order = %v, want [a c]", order)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if len(s.slots) != 2 {
		t.Errorf("slots not compacted: %d", len(s.slots))
	}
}

func TestSignalConnectDuringEmit(t *testing.T) {
	var s Signal[struct{}]
	late := 0
	s.Connect(func(struct{}) {
		if late == 0 {
			s.Connect(func(struct{}) { late++ })
		}
	})

	s.Emit(struct{}{})
	if late != 0 {
		t.Errorf("late subscriber fired during the emit that added it")
	}
	s.Emit(struct{}{})
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

func TestSignalConnectNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var s Signal[int]
	s.Connect(nil)
}
