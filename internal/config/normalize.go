// internal/config/normalize.go
package config

import "github.com/tamzrod/bme280-bridge/internal/status"

const defaultBaud = 19200

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	for si := range cfg.Bridge.Sensors {
		s := &cfg.Bridge.Sensors[si]

		if s.Export.Baud == 0 {
			s.Export.Baud = defaultBaud
		}

		// Skip sensors that did not opt into the status block.
		if s.Export.StatusSlot == nil {
			continue
		}

		// device_name: ASCII already validated, truncate to block capacity.
		if len(s.Export.DeviceName) > status.DeviceNameMaxChars {
			s.Export.DeviceName = s.Export.DeviceName[:status.DeviceNameMaxChars]
		}
	}
}
