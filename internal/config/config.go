// internal/config/config.go
package config

type Config struct {
	Bridge BridgeConfig `yaml:"bridge"`
}

type BridgeConfig struct {
	Sensors []SensorConfig `yaml:"sensors"`
}

// ---- SENSOR ----

type SensorConfig struct {
	ID     string       `yaml:"id"`
	Bus    BusConfig    `yaml:"bus"`
	Reads  []ReadConfig `yaml:"reads"`
	Poll   PollConfig   `yaml:"poll"`
	Export ExportConfig `yaml:"export"`
}

// ---- BUS ----

type BusConfig struct {
	Number           int   `yaml:"number"`  // /dev/i2c-<number>
	Address          uint8 `yaml:"address"` // 7-bit device address
	TimeoutMs        int   `yaml:"timeout_ms"`
	OfflineThreshold uint8 `yaml:"offline_threshold"` // 0 means 1
}

// ---- READ GEOMETRY ----

type ReadConfig struct {
	Reg    uint8 `yaml:"reg"`
	Length int   `yaml:"length"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- EXPORT ----

type ExportConfig struct {
	Endpoint string `yaml:"endpoint"` // tcp://host:port, rtu:///dev/ttyX, ingest://host:port
	Baud     int    `yaml:"baud"`     // rtu only; defaulted by Normalize
	UnitID   uint8  `yaml:"unit_id"`
	DataBase uint16 `yaml:"data_base"`

	// Device status block (optional, opt-in)
	StatusSlot *uint16 `yaml:"status_slot"`
	DeviceName string  `yaml:"device_name"`
}
