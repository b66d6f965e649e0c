// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/bme280-bridge/internal/bme280"
)

// Device is the tracked driver surface the poller reads through.
// The poller depends on geometry only.
type Device interface {
	Tick(nowMs uint32)
	ReadRegs(nowMs uint32, startReg uint8, buf []byte) bme280.Status
	Recover(nowMs uint32) bme280.Status
	Health() bme280.Health
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	SensorID string
	Interval time.Duration
	Reads    []ReadBlock

	// Now supplies monotonic milliseconds, sampled once per cycle and
	// handed to every tracked call in that cycle. Defaults to process
	// uptime.
	Now func() uint32
}

// Poller is a dumb, clock-driven reader. It owns the device; nothing
// else may touch it while the poller runs.
type Poller struct {
	cfg Config
	dev Device
}

// New creates a poller with immutable config.
func New(cfg Config, dev Device) (*Poller, error) {
	if cfg.SensorID == "" {
		return nil, errors.New("poller: sensor id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Reads) == 0 {
		return nil, errors.New("poller: at least one read block required")
	}
	if dev == nil {
		return nil, errors.New("poller: device required")
	}
	if cfg.Now == nil {
		cfg.Now = uptimeMillis
	}
	return &Poller{cfg: cfg, dev: dev}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any failure aborts the cycle.
// While the driver reports OFFLINE, the cycle issues a single recovery
// attempt instead of reads; measurement resumes once a recovery
// succeeds.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		SensorID: p.cfg.SensorID,
		At:       time.Now(),
	}

	nowMs := p.cfg.Now()
	p.dev.Tick(nowMs)

	if p.dev.Health().State == bme280.StateOffline {
		if st := p.dev.Recover(nowMs); !st.Ok() {
			res.Err = st.Err()
			res.Health = p.dev.Health()
			return res
		}
	}

	var blocks []BlockResult

	for _, rb := range p.cfg.Reads {
		buf := make([]byte, rb.Length)
		if st := p.dev.ReadRegs(nowMs, rb.Reg, buf); !st.Ok() {
			res.Err = st.Err()
			res.Health = p.dev.Health()
			return res
		}
		blocks = append(blocks, BlockResult{Reg: rb.Reg, Data: buf})
	}

	// Commit only if all reads succeeded
	res.Blocks = blocks
	res.Health = p.dev.Health()
	return res
}

var processStart = time.Now()

func uptimeMillis() uint32 {
	return uint32(time.Since(processStart).Milliseconds())
}
