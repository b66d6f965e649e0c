// internal/bme280/driver.go

// Package bme280 drives a Bosch BME280 environmental sensor over an
// injected two-wire transport and classifies the device's availability
// from the outcomes of tracked bus operations.
//
// A Driver is an independently owned value; its zero value is an
// uninitialized driver. It is intended for exclusive ownership by one
// goroutine: concurrent use without external synchronization is
// undefined. Timestamps are monotonic milliseconds supplied by the
// caller; the driver never reads a clock.
package bme280

import "time"

// Config is the driver configuration supplied to Begin. It is copied
// and immutable until the next Begin.
type Config struct {
	Bus              Transport
	Address          uint8
	Timeout          time.Duration // per-transaction bus timeout, must be > 0
	OfflineThreshold uint8         // consecutive failures before OFFLINE; 0 is coerced to 1
}

// Driver is one logical BME280 device instance.
type Driver struct {
	cfg         Config
	initialized bool
	state       DriverState

	// health counters, mutated only by updateHealth
	lastOkMs            uint32
	lastErrorMs         uint32
	lastError           Status
	consecutiveFailures uint8
	totalFailures       uint32
	totalSuccess        uint32
}

// Begin initializes the driver. All health history is discarded first,
// so a failed Begin leaves no partial state behind. On validation
// failure the driver stays UNINIT.
func (d *Driver) Begin(cfg Config) Status {
	d.initialized = false
	d.state = StateUninit
	d.lastOkMs = 0
	d.lastErrorMs = 0
	d.lastError = OK()
	d.consecutiveFailures = 0
	d.totalFailures = 0
	d.totalSuccess = 0

	if cfg.Bus == nil {
		return Fail(ErrInvalidConfig, "bus transport not set")
	}
	if cfg.Timeout <= 0 {
		return Fail(ErrInvalidConfig, "bus timeout must be > 0")
	}

	d.cfg = cfg
	if d.cfg.OfflineThreshold == 0 {
		d.cfg.OfflineThreshold = 1
	}

	d.initialized = true
	d.state = StateReady

	return OK()
}

// Tick is the periodic housekeeping hook. It is safe to call at any
// frequency and never blocks. Timestamp ordering across calls is not
// required; Tick currently consumes no time.
func (d *Driver) Tick(nowMs uint32) {
	_ = nowMs
}

// End shuts the driver down. Idempotent.
func (d *Driver) End() {
	d.initialized = false
	d.state = StateUninit
}

// Probe checks device presence by reading the chip identity register
// through the raw path. It never touches health tracking, so it is
// safe to call from diagnostics at any time after Begin.
func (d *Driver) Probe() Status {
	if !d.initialized {
		return Fail(ErrNotInitialized, "Begin not called")
	}

	var id [1]byte
	st := d.busWriteReadRaw([]byte{RegChipID}, id[:])
	if !st.Ok() {
		return st
	}
	if id[0] != ChipID {
		return FailDetail(ErrChipIDMismatch, "chip id mismatch", int32(id[0]))
	}

	return OK()
}

// Recover performs the same identity check as Probe but through the
// tracked path, so the attempt counts toward health either way. A
// single success brings an OFFLINE driver back to READY.
func (d *Driver) Recover(nowMs uint32) Status {
	if !d.initialized {
		return Fail(ErrNotInitialized, "Begin not called")
	}

	var id [1]byte
	st := d.busWriteReadTracked(nowMs, []byte{RegChipID}, id[:])
	if !st.Ok() {
		return st
	}
	if id[0] != ChipID {
		return FailDetail(ErrChipIDMismatch, "chip id mismatch", int32(id[0]))
	}

	return OK()
}
