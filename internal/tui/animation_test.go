package tui

import (
	"testing"

	"github.com/colonyops/swipelist/internal/core/rows"
)

func TestAnimationStore_RecordShift_Delete(t *testing.T) {
	store := NewAnimationStore(4)
	before := rows.Seed(3)
	after := []rows.Row{before[0], before[2]}

	if n := store.RecordShift(before, after); n != 1 {
		t.Fatalf("expected 1 shifted row, got %d", n)
	}

	if _, ok := store.animations["key-0"]; ok {
		t.Error("key-0 did not move and should not animate")
	}

	anim, ok := store.animations["key-2"]
	if !ok {
		t.Fatal("expected animation for key-2")
	}
	if anim.From != 2 || anim.To != 1 {
		t.Errorf("expected 2 -> 1, got %d -> %d", anim.From, anim.To)
	}
	if anim.TicksLeft != 4 {
		t.Errorf("expected 4 ticks, got %d", anim.TicksLeft)
	}
}

func TestAnimationStore_RecordShift_Reorder(t *testing.T) {
	store := NewAnimationStore(2)
	before := rows.Seed(3)
	after := []rows.Row{before[1], before[0], before[2]}

	if n := store.RecordShift(before, after); n != 2 {
		t.Fatalf("expected 2 shifted rows, got %d", n)
	}
	if _, ok := store.animations["key-2"]; ok {
		t.Error("key-2 kept its index")
	}
}

func TestAnimationStore_Disabled(t *testing.T) {
	store := NewAnimationStore(0)
	before := rows.Seed(3)

	if n := store.RecordShift(before, before[1:]); n != 0 {
		t.Errorf("expected no animations, got %d", n)
	}
	if store.Active() {
		t.Error("expected inactive store")
	}
}

func TestAnimationStore_Tick(t *testing.T) {
	store := NewAnimationStore(2)
	before := rows.Seed(2)
	store.RecordShift(before, []rows.Row{before[1], before[0]})

	if s := store.Strength("key-0"); s != 1 {
		t.Errorf("expected full strength, got %v", s)
	}

	// First tick: 2 -> 1
	if !store.Tick() {
		t.Error("expected changed=true after first tick")
	}
	if s := store.Strength("key-0"); s != 0.5 {
		t.Errorf("expected half strength, got %v", s)
	}

	// Second tick: 1 -> 0 (removed)
	if !store.Tick() {
		t.Error("expected changed=true after second tick")
	}
	if store.Active() {
		t.Error("expected animation to be removed")
	}

	if store.Tick() {
		t.Error("expected changed=false with no animations")
	}
}

