// internal/bme280/health_test.go
package bme280

import (
	"math"
	"testing"
	"time"
)

func TestFailureLadder_DegradedThenOfflineThenReady(t *testing.T) {
	bus := newFakeBus()
	var d Driver
	if st := d.Begin(validConfig(bus)); !st.Ok() { // threshold 5
		t.Fatalf("Begin failed: %v", st.Code)
	}

	bus.failWith = Fail(ErrI2C, "nack")
	var buf [2]byte

	for i := 1; i <= 4; i++ {
		d.ReadRegs(uint32(i), 0xF7, buf[:])
		if d.State() != StateDegraded {
			t.Fatalf("after %d failures: expected DEGRADED, got %v", i, d.State())
		}
		if d.ConsecutiveFailures() != uint8(i) {
			t.Fatalf("after %d failures: consecutive=%d", i, d.ConsecutiveFailures())
		}
	}

	d.ReadRegs(5, 0xF7, buf[:])
	if d.State() != StateOffline || d.ConsecutiveFailures() != 5 {
		t.Fatalf("at threshold: state=%v consecutive=%d", d.State(), d.ConsecutiveFailures())
	}
	if d.IsOnline() {
		t.Fatalf("IsOnline must be false when OFFLINE")
	}

	bus.failWith = OK()
	d.ReadRegs(6, 0xF7, buf[:])
	if d.State() != StateReady || d.ConsecutiveFailures() != 0 {
		t.Fatalf("after success: state=%v consecutive=%d", d.State(), d.ConsecutiveFailures())
	}
	if d.TotalFailures() != 5 || d.TotalSuccess() != 1 {
		t.Fatalf("totals: failures=%d success=%d", d.TotalFailures(), d.TotalSuccess())
	}
	if d.LastOkMs() != 6 || d.LastErrorMs() != 5 {
		t.Fatalf("timestamps: lastOk=%d lastError=%d", d.LastOkMs(), d.LastErrorMs())
	}
	if d.LastError().Code != ErrI2C {
		t.Fatalf("last error: %v", d.LastError().Code)
	}
}

func TestOfflineThresholdZeroCoercedToOne(t *testing.T) {
	bus := newFakeBus()
	var d Driver
	if st := d.Begin(Config{
		Bus:     bus,
		Address: 0x76,
		Timeout: 100 * time.Millisecond,
		// OfflineThreshold left at 0
	}); !st.Ok() {
		t.Fatalf("Begin failed: %v", st.Code)
	}

	bus.failWith = Fail(ErrTimeout, "no response")
	var buf [1]byte
	d.ReadRegs(1, 0xF7, buf[:])

	if d.State() != StateOffline {
		t.Fatalf("single failure with threshold 0 must go OFFLINE, got %v", d.State())
	}
}

func TestCallerErrorsNeverTouchHealth(t *testing.T) {
	bus := newFakeBus()
	var d Driver
	if st := d.Begin(validConfig(bus)); !st.Ok() {
		t.Fatalf("Begin failed: %v", st.Code)
	}

	// Put the driver mid-ladder first so any reset would show.
	bus.failWith = Fail(ErrI2C, "nack")
	var buf [1]byte
	d.ReadRegs(1, 0xF7, buf[:])
	d.ReadRegs(2, 0xF7, buf[:])
	before := d.Health()

	// Parameter error: rejected locally.
	if st := d.ReadRegs(3, 0xF7, nil); st.Code != ErrInvalidParam {
		t.Fatalf("expected INVALID_PARAM, got %v", st.Code)
	}
	if st := d.WriteRegs(3, 0xF4, make([]byte, MaxWriteLen+1)); st.Code != ErrInvalidParam {
		t.Fatalf("expected INVALID_PARAM, got %v", st.Code)
	}

	// Setup error surfaced by the transport: passed through untracked.
	bus.failWith = Fail(ErrInvalidConfig, "misconfigured bridge")
	if st := d.ReadRegs(4, 0xF7, buf[:]); st.Code != ErrInvalidConfig {
		t.Fatalf("expected INVALID_CONFIG, got %v", st.Code)
	}
	bus.failWith = Fail(ErrNotInitialized, "bridge down")
	if st := d.ReadRegs(5, 0xF7, buf[:]); st.Code != ErrNotInitialized {
		t.Fatalf("expected NOT_INITIALIZED, got %v", st.Code)
	}

	if d.Health() != before {
		t.Fatalf("caller errors mutated health: before=%+v after=%+v", before, d.Health())
	}
}

func TestCountersSaturateWithoutWrapping(t *testing.T) {
	bus := newFakeBus()
	var d Driver
	if st := d.Begin(validConfig(bus)); !st.Ok() {
		t.Fatalf("Begin failed: %v", st.Code)
	}

	d.totalSuccess = math.MaxUint32
	d.totalFailures = math.MaxUint32
	d.consecutiveFailures = math.MaxUint8

	var buf [1]byte
	bus.failWith = Fail(ErrI2C, "nack")
	d.ReadRegs(1, 0xF7, buf[:])

	if d.totalFailures != math.MaxUint32 {
		t.Fatalf("total failures wrapped: %d", d.totalFailures)
	}
	if d.consecutiveFailures != math.MaxUint8 {
		t.Fatalf("consecutive failures wrapped: %d", d.consecutiveFailures)
	}

	bus.failWith = OK()
	d.ReadRegs(2, 0xF7, buf[:])

	if d.totalSuccess != math.MaxUint32 {
		t.Fatalf("total success wrapped: %d", d.totalSuccess)
	}
	if d.consecutiveFailures != 0 || d.State() != StateReady {
		t.Fatalf("success must still reset: consecutive=%d state=%v", d.consecutiveFailures, d.State())
	}
}

func TestUpdateHealth_NoopWhenUninitialized(t *testing.T) {
	var d Driver

	st := d.updateHealth(Fail(ErrI2C, "nack"), 42)
	if st.Code != ErrI2C {
		t.Fatalf("status must pass through unchanged, got %v", st.Code)
	}
	if d.totalFailures != 0 || d.state != StateUninit {
		t.Fatalf("uninitialized driver mutated: failures=%d state=%v", d.totalFailures, d.state)
	}
}

func TestStateIsPureFunctionOfCounters(t *testing.T) {
	bus := newFakeBus()
	var d Driver
	if st := d.Begin(Config{
		Bus:              bus,
		Address:          0x76,
		Timeout:          time.Millisecond,
		OfflineThreshold: 2,
	}); !st.Ok() {
		t.Fatalf("Begin failed: %v", st.Code)
	}

	var buf [1]byte
	bus.failWith = Fail(ErrI2C, "nack")

	d.ReadRegs(1, 0xF7, buf[:])
	if d.State() != StateDegraded {
		t.Fatalf("1 < threshold: expected DEGRADED, got %v", d.State())
	}
	d.ReadRegs(2, 0xF7, buf[:])
	if d.State() != StateOffline {
		t.Fatalf("at threshold: expected OFFLINE, got %v", d.State())
	}
	d.ReadRegs(3, 0xF7, buf[:])
	if d.State() != StateOffline {
		t.Fatalf("beyond threshold: expected OFFLINE, got %v", d.State())
	}
}
