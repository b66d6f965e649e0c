// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/bme280-bridge/internal/status"
)

// MaxReadLen bounds a single register read block.
const MaxReadLen = 32

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	type span struct {
		start  uint16
		end    uint16
		sensor string
	}

	seen := make(map[string]struct{})

	// key = endpoint | unit_id | status_slot
	statusOwner := make(map[string]string)

	// key = endpoint | unit_id
	spans := make(map[string][]span)

	for _, s := range cfg.Bridge.Sensors {
		if s.ID == "" {
			return fmt.Errorf("config: sensor id required")
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("config: duplicate sensor id %q", s.ID)
		}
		seen[s.ID] = struct{}{}

		// ------------------------------------------------------------
		// BUS
		// ------------------------------------------------------------

		if s.Bus.Address < 0x08 || s.Bus.Address > 0x77 {
			return fmt.Errorf("sensor %q: i2c address 0x%02X outside 0x08-0x77", s.ID, s.Bus.Address)
		}
		if s.Bus.TimeoutMs <= 0 {
			return fmt.Errorf("sensor %q: timeout_ms must be > 0", s.ID)
		}

		// ------------------------------------------------------------
		// POLL + READ GEOMETRY
		// ------------------------------------------------------------

		if s.Poll.IntervalMs <= 0 {
			return fmt.Errorf("sensor %q: poll interval_ms must be > 0", s.ID)
		}
		if len(s.Reads) == 0 {
			return fmt.Errorf("sensor %q: at least one read block required", s.ID)
		}
		for _, r := range s.Reads {
			if r.Length < 1 || r.Length > MaxReadLen {
				return fmt.Errorf("sensor %q: read length %d outside 1-%d", s.ID, r.Length, MaxReadLen)
			}
		}

		// ------------------------------------------------------------
		// EXPORT
		// ------------------------------------------------------------

		if s.Export.Endpoint == "" {
			return fmt.Errorf("sensor %q: export endpoint required", s.ID)
		}

		// device_name sanity (ASCII only)
		for i := 0; i < len(s.Export.DeviceName); i++ {
			if s.Export.DeviceName[i] > 0x7F {
				return fmt.Errorf("sensor %q: device_name must contain ASCII characters only", s.ID)
			}
		}

		memKey := fmt.Sprintf("%s|%d", s.Export.Endpoint, s.Export.UnitID)

		// data span: reads packed to registers back to back from data_base
		regs := uint16(0)
		for _, r := range s.Reads {
			regs += uint16((r.Length + 1) / 2)
		}
		dataSpan := span{
			start:  s.Export.DataBase,
			end:    s.Export.DataBase + regs - 1,
			sensor: s.ID,
		}

		sensorSpans := []span{dataSpan}

		// status span: one fixed block per slot (opt-in)
		if s.Export.StatusSlot != nil {
			slot := *s.Export.StatusSlot

			key := fmt.Sprintf("%s|%d|%d", s.Export.Endpoint, s.Export.UnitID, slot)
			if prev, exists := statusOwner[key]; exists {
				return fmt.Errorf(
					"status_slot collision: endpoint=%s unit_id=%d slot=%d used by sensors %q and %q",
					s.Export.Endpoint, s.Export.UnitID, slot, prev, s.ID,
				)
			}
			statusOwner[key] = s.ID

			base := slot * status.SlotsPerDevice
			sensorSpans = append(sensorSpans, span{
				start:  base,
				end:    base + status.SlotsPerDevice - 1,
				sensor: s.ID,
			})
		}

		for _, ns := range sensorSpans {
			for _, es := range spans[memKey] {
				// overlap check (inclusive)
				if !(ns.end < es.start || ns.start > es.end) {
					return fmt.Errorf(
						"register overlap: endpoint=%s unit_id=%d range=%d-%d (sensor %q) overlaps %d-%d (sensor %q)",
						s.Export.Endpoint, s.Export.UnitID,
						ns.start, ns.end, ns.sensor,
						es.start, es.end, es.sensor,
					)
				}
			}
			spans[memKey] = append(spans[memKey], ns)
		}
	}

	return nil
}
