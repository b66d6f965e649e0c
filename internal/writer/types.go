// internal/writer/types.go
package writer

import "github.com/tamzrod/bme280-bridge/internal/poller"

// DataPlan is the destination register window for raw poll data.
// Blocks are packed back to back starting at Base, in read order.
type DataPlan struct {
	Endpoint string
	UnitID   uint8
	Base     uint16
}

// StatusPlan is the destination of the device status block (opt-in).
type StatusPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
}

// Plan is the fully-built delivery plan for one sensor.
type Plan struct {
	SensorID string
	Data     DataPlan
	Status   *StatusPlan
}

// Writer delivers poll snapshots into targets.
type Writer interface {
	Write(res poller.PollResult) error
}
