package game

import (
	"testing"
	"time"
)

func testMaskConfig() MaskConfig {
	return MaskConfig{
		Duration: 2 * time.Second,
		Cooldown: 3 * time.Second,
	}
}

func TestMaskActivation(t *testing.T) {
	m := NewMaskController(testMaskConfig())

	if m.Active() {
		t.Fatal("mask should start inactive")
	}

	if !m.Toggle() {
		t.Fatal("first toggle should activate")
	}
	if !m.Active() {
		t.Error("mask should be active after toggle")
	}
	if m.TimeRemaining() != 2*time.Second {
		t.Errorf("TimeRemaining = %v, want 2s", m.TimeRemaining())
	}
	if m.UsageCount() != 1 {
		t.Errorf("UsageCount = %d, want 1", m.UsageCount())
	}
}

func TestMaskExpiryEntersCooldown(t *testing.T) {
	m := NewMaskController(testMaskConfig())
	m.Toggle()

	// Tick in 100ms steps; the reveal should end exactly at 2s total.
	step := 100 * time.Millisecond
	var elapsed time.Duration
	for m.Active() {
		m.Tick(step)
		elapsed += step
		if elapsed > 10*time.Second {
			t.Fatal("mask never expired")
		}
	}

	if elapsed != 2*time.Second {
		t.Errorf("reveal lasted %v, want exactly 2s", elapsed)
	}
	if m.State() != MaskCooling {
		t.Errorf("state after expiry = %s, want cooling", m.State())
	}
	if m.CooldownRemaining() != 3*time.Second {
		t.Errorf("CooldownRemaining = %v, want 3s", m.CooldownRemaining())
	}
}

func TestMaskToggleDuringCooldownIsNoOp(t *testing.T) {
	m := NewMaskController(testMaskConfig())
	m.Toggle()
	m.Tick(2 * time.Second) // Expire into cooldown

	usages := m.UsageCount()
	remaining := m.CooldownRemaining()

	if m.Toggle() {
		t.Error("toggle during cooldown should be rejected")
	}
	if m.UsageCount() != usages {
		t.Error("rejected toggle must not change usage count")
	}
	if m.CooldownRemaining() != remaining {
		t.Error("rejected toggle must not change cooldown")
	}
	if m.State() != MaskCooling {
		t.Errorf("state = %s, want cooling", m.State())
	}
}

func TestMaskEarlyDeactivationChargesFullCooldown(t *testing.T) {
	m := NewMaskController(testMaskConfig())
	m.Toggle()
	m.Tick(500 * time.Millisecond)

	if !m.Toggle() {
		t.Fatal("deactivating an active mask should succeed")
	}
	if m.State() != MaskCooling {
		t.Errorf("state = %s, want cooling", m.State())
	}
	if m.CooldownRemaining() != 3*time.Second {
		t.Errorf("CooldownRemaining = %v, want full 3s despite early deactivation", m.CooldownRemaining())
	}
	if m.UsageCount() != 1 {
		t.Errorf("UsageCount = %d, deactivation must not count a usage", m.UsageCount())
	}
}

func TestMaskCooldownRecovery(t *testing.T) {
	m := NewMaskController(testMaskConfig())
	m.Toggle()
	m.Tick(2 * time.Second)
	m.Tick(3 * time.Second)

	if m.State() != MaskInactive {
		t.Errorf("state after full cooldown = %s, want inactive", m.State())
	}
	if !m.Toggle() {
		t.Error("mask should be usable again after cooldown")
	}
	if m.UsageCount() != 2 {
		t.Errorf("UsageCount = %d, want 2", m.UsageCount())
	}
}

func TestMaskTimersNeverNegative(t *testing.T) {
	m := NewMaskController(testMaskConfig())
	m.Toggle()

	// Overshoot both timers with a huge dt.
	m.Tick(time.Minute)
	if m.TimeRemaining() < 0 {
		t.Errorf("TimeRemaining went negative: %v", m.TimeRemaining())
	}
	m.Tick(time.Minute)
	if m.CooldownRemaining() < 0 {
		t.Errorf("CooldownRemaining went negative: %v", m.CooldownRemaining())
	}
}

func TestMaskReset(t *testing.T) {
	m := NewMaskController(testMaskConfig())
	m.Toggle()
	m.Tick(time.Second)
	m.Reset()

	if m.State() != MaskInactive {
		t.Errorf("state after reset = %s, want inactive", m.State())
	}
	if m.UsageCount() != 0 {
		t.Errorf("UsageCount after reset = %d, want 0", m.UsageCount())
	}
	if m.TimeRemaining() != 0 || m.CooldownRemaining() != 0 {
		t.Error("timers should be zeroed after reset")
	}
}
