// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/bme280-bridge/internal/config"
)

// Build constructs a Poller over an already-initialized device.
// No retries, no loops, no semantics.
func Build(s cfg.SensorConfig, dev Device) (*Poller, error) {
	reads := make([]ReadBlock, 0, len(s.Reads))
	for _, r := range s.Reads {
		reads = append(reads, ReadBlock{
			Reg:    r.Reg,
			Length: r.Length,
		})
	}

	return New(
		Config{
			SensorID: s.ID,
			Interval: time.Duration(s.Poll.IntervalMs) * time.Millisecond,
			Reads:    reads,
		},
		dev,
	)
}
