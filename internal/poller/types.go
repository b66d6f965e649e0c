// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/bme280-bridge/internal/bme280"
)

// ReadBlock describes one register read geometry.
// Geometry only: no semantics.
type ReadBlock struct {
	Reg    uint8
	Length int
}

// BlockResult is the raw result of a single register read.
type BlockResult struct {
	Reg  uint8
	Data []byte
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	SensorID string
	At       time.Time

	// Health is the driver's health after the cycle, failed or not.
	Health bme280.Health

	Blocks []BlockResult
	Err    error // non-nil means the poll cycle failed
}
