// internal/status/snapshot.go
package status

import "github.com/tamzrod/bme280-bridge/internal/bme280"

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	StateCode           uint16
	ConsecutiveFailures uint16
	LastErrorCode       uint16
	LastErrorDetail     uint16
	TotalSuccess        uint32
	TotalFailures       uint32
	SecondsInError      uint16
}

// FromHealth maps a driver health snapshot into status slots.
// SecondsInError is runner-owned state and is left at zero; the
// orchestrator fills it in.
func FromHealth(h bme280.Health) Snapshot {
	return Snapshot{
		StateCode:           stateCode(h.State),
		ConsecutiveFailures: uint16(h.ConsecutiveFailures),
		LastErrorCode:       uint16(h.LastError.Code),
		LastErrorDetail:     uint16(h.LastError.Detail),
		TotalSuccess:        h.TotalSuccess,
		TotalFailures:       h.TotalFailures,
	}
}

func stateCode(s bme280.DriverState) uint16 {
	switch s {
	case bme280.StateReady:
		return StateReady
	case bme280.StateDegraded:
		return StateDegraded
	case bme280.StateOffline:
		return StateOffline
	default:
		return StateUninit
	}
}
