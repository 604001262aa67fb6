package systems

import "testing"

func TestPointerFirstEvent(t *testing.T) {
	p := NewPointer(5, 700)

	if p.Seen() {
		t.Error("pointer should start unseen")
	}
	if !p.Record(100, 100) {
		t.Error("first Record should report first=true")
	}
	if p.Record(110, 100) {
		t.Error("second Record should report first=false")
	}
}

func TestPointerMoveDistance(t *testing.T) {
	p := NewPointer(5, 700)
	p.Record(0, 0)
	p.Record(3, 4)

	if d := p.MoveDistance(); d != 5 {
		t.Errorf("MoveDistance = %v, want 5", d)
	}
}

func TestPointerIdleResetOnLargeMove(t *testing.T) {
	p := NewPointer(5, 700)
	p.Record(0, 0)
	p.Tick(500)

	// Move under the threshold: idle keeps accumulating.
	p.Record(2, 0)
	if p.IdleMs != 500 {
		t.Errorf("IdleMs = %v after small move, want 500", p.IdleMs)
	}

	// Move past the threshold: idle resets.
	p.Record(50, 0)
	if p.IdleMs != 0 {
		t.Errorf("IdleMs = %v after large move, want 0", p.IdleMs)
	}
}

func TestPointerStill(t *testing.T) {
	p := NewPointer(5, 700)
	p.Record(100, 100)
	p.Record(102, 100) // 2 px, under threshold

	p.Tick(600)
	if p.Still() {
		t.Error("pointer should not be still before the idle window elapses")
	}

	p.Tick(200) // IdleMs now 800 > 700
	if !p.Still() {
		t.Error("pointer should be still: small move and idle past the window")
	}

	// A large move breaks stillness both ways.
	p.Record(300, 300)
	if p.Still() {
		t.Error("pointer should not be still after a large move")
	}
}
