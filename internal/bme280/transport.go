// internal/bme280/transport.go
package bme280

import "time"

// Transport is the two-operation bus capability the driver runs on.
// Write pushes a raw payload to the device; WriteRead performs a write
// immediately followed by a read as one uninterrupted transaction.
// Implementations block up to timeout and report the outcome as a
// Status; the driver never retries.
type Transport interface {
	Write(addr uint8, buf []byte, timeout time.Duration) Status
	WriteRead(addr uint8, tx, rx []byte, timeout time.Duration) Status
}

// ---- raw layer ----
// Stateless pass-through, no health bookkeeping. Probe-only.

func (d *Driver) busWriteRaw(buf []byte) Status {
	if d.cfg.Bus == nil {
		return Fail(ErrInvalidConfig, "bus transport not set")
	}
	return d.cfg.Bus.Write(d.cfg.Address, buf, d.cfg.Timeout)
}

func (d *Driver) busWriteReadRaw(tx, rx []byte) Status {
	if d.cfg.Bus == nil {
		return Fail(ErrInvalidConfig, "bus transport not set")
	}
	return d.cfg.Bus.WriteRead(d.cfg.Address, tx, rx, d.cfg.Timeout)
}

// ---- tracked layer ----
// Every hardware-facing outcome feeds the health model. Caller and
// setup errors (INVALID_CONFIG, INVALID_PARAM, NOT_INITIALIZED) are
// returned as-is: they say nothing about device health.

func (d *Driver) busWriteTracked(nowMs uint32, buf []byte) Status {
	if !d.initialized {
		return Fail(ErrNotInitialized, "Begin not called")
	}
	if len(buf) == 0 {
		return Fail(ErrInvalidParam, "empty bus write buffer")
	}

	st := d.busWriteRaw(buf)
	if isCallerError(st.Code) {
		return st
	}
	return d.updateHealth(st, nowMs)
}

func (d *Driver) busWriteReadTracked(nowMs uint32, tx, rx []byte) Status {
	if !d.initialized {
		return Fail(ErrNotInitialized, "Begin not called")
	}
	if len(tx) == 0 || len(rx) == 0 {
		return Fail(ErrInvalidParam, "empty bus transfer buffer")
	}

	st := d.busWriteReadRaw(tx, rx)
	if isCallerError(st.Code) {
		return st
	}
	return d.updateHealth(st, nowMs)
}

func isCallerError(code Err) bool {
	return code == ErrInvalidConfig || code == ErrInvalidParam || code == ErrNotInitialized
}
