// internal/bme280/health.go
package bme280

import "math"

// DriverState is the coarse availability classification derived from
// the consecutive-failure counter and the offline threshold.
type DriverState uint8

const (
	StateUninit   DriverState = iota // Begin not called, or End called
	StateReady                       // consecutive failures == 0
	StateDegraded                    // 0 < consecutive failures < threshold
	StateOffline                     // consecutive failures >= threshold
)

func (s DriverState) String() string {
	switch s {
	case StateUninit:
		return "UNINIT"
	case StateReady:
		return "READY"
	case StateDegraded:
		return "DEGRADED"
	case StateOffline:
		return "OFFLINE"
	default:
		return "UNKNOWN"
	}
}

// Health is a point-in-time copy of the driver's health counters.
type Health struct {
	State               DriverState
	LastOkMs            uint32
	LastErrorMs         uint32
	LastError           Status
	ConsecutiveFailures uint8
	TotalFailures       uint32
	TotalSuccess        uint32
}

// updateHealth folds one tracked-operation outcome into the health
// counters and recomputes the driver state. The Status is always
// returned unchanged; health tracking never suppresses or retries.
// Called ONLY from the tracked transport wrappers.
func (d *Driver) updateHealth(st Status, nowMs uint32) Status {
	if !d.initialized {
		// Guards against an update racing End.
		return st
	}

	if st.Ok() {
		d.lastOkMs = nowMs
		if d.totalSuccess < math.MaxUint32 {
			d.totalSuccess++
		}
		d.consecutiveFailures = 0
		d.state = StateReady
		return st
	}

	d.lastError = st
	d.lastErrorMs = nowMs
	if d.totalFailures < math.MaxUint32 {
		d.totalFailures++
	}
	if d.consecutiveFailures < math.MaxUint8 {
		d.consecutiveFailures++
	}

	if d.consecutiveFailures >= d.cfg.OfflineThreshold {
		d.state = StateOffline
	} else {
		d.state = StateDegraded
	}

	return st
}

// ---- read-only accessors ----

// State returns the current driver state.
func (d *Driver) State() DriverState { return d.state }

// IsOnline reports whether tracked operations are worth issuing:
// true for READY and DEGRADED, false for UNINIT and OFFLINE.
func (d *Driver) IsOnline() bool {
	return d.state == StateReady || d.state == StateDegraded
}

// LastOkMs returns the timestamp of the last successful tracked operation.
func (d *Driver) LastOkMs() uint32 { return d.lastOkMs }

// LastErrorMs returns the timestamp of the last failed tracked operation.
func (d *Driver) LastErrorMs() uint32 { return d.lastErrorMs }

// LastError returns the most recent tracked failure Status.
func (d *Driver) LastError() Status { return d.lastError }

// ConsecutiveFailures returns the failure count since the last success.
func (d *Driver) ConsecutiveFailures() uint8 { return d.consecutiveFailures }

// TotalFailures returns the lifetime tracked-failure count.
func (d *Driver) TotalFailures() uint32 { return d.totalFailures }

// TotalSuccess returns the lifetime tracked-success count.
func (d *Driver) TotalSuccess() uint32 { return d.totalSuccess }

// Health returns a snapshot of all health fields at once.
func (d *Driver) Health() Health {
	return Health{
		State:               d.state,
		LastOkMs:            d.lastOkMs,
		LastErrorMs:         d.lastErrorMs,
		LastError:           d.lastError,
		ConsecutiveFailures: d.consecutiveFailures,
		TotalFailures:       d.totalFailures,
		TotalSuccess:        d.totalSuccess,
	}
}
