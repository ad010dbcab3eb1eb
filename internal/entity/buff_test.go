package entity

import "testing"

func TestBuffTick(t *testing.T) {
	b := Buff{Multiplier: 1.5, Turns: 2}

	if got := b.Factor(); got != 1.5 {
		t.Fatalf("Factor() = %v, want 1.5", got)
	}
	if b.Tick() {
		t.Error("Tick() reported expiry with a turn left")
	}
	if got := b.Factor(); got != 1.5 {
		t.Errorf("Factor() after one tick = %v, want 1.5", got)
	}
	if !b.Tick() {
		t.Error("Tick() should report expiry when the counter reaches 0")
	}
	if b.Multiplier != 1.0 || b.Turns != 0 {
		t.Errorf("expired buff = %+v, want neutral", b)
	}
	if b.Tick() {
		t.Error("Tick() on an expired buff should be a no-op")
	}
}

func TestZeroBuffIsNeutral(t *testing.T) {
	var b Buff
	if got := b.Factor(); got != 1.0 {
		t.Errorf("zero Buff Factor() = %v, want 1.0", got)
	}
	if b.Active() {
		t.Error("zero Buff should not be active")
	}
}
