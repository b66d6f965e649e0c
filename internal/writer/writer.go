// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/bme280-bridge/internal/poller"
)

// endpointClient is the exact contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

type bridgeWriter struct {
	plan    Plan
	clients map[string]endpointClient
}

func New(plan Plan, clients map[string]endpointClient) Writer {
	return &bridgeWriter{
		plan:    plan,
		clients: clients,
	}
}

// Write delivers one poll cycle's raw blocks. Failed cycles carry no
// blocks and produce no data writes; status delivery is the status
// writer's job.
func (w *bridgeWriter) Write(res poller.PollResult) error {
	if res.Err != nil {
		return nil
	}

	cli := w.clients[w.plan.Data.Endpoint]
	if cli == nil {
		return fmt.Errorf("writer: missing client for endpoint %s", w.plan.Data.Endpoint)
	}

	var errs []string

	addr := w.plan.Data.Base
	for _, b := range res.Blocks {
		regs := packBytes(b.Data)
		if err := cli.WriteRegisters(w.plan.Data.UnitID, addr, regs); err != nil {
			errs = append(errs, fmt.Sprintf(
				"writer: ep=%s unit=%d reg=0x%02X addr=%d err=%v",
				w.plan.Data.Endpoint, w.plan.Data.UnitID, b.Reg, addr, err,
			))
		}
		addr += uint16(len(regs))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}

	return nil
}

// packBytes packs raw sensor bytes into registers, two bytes per
// register big-endian; an odd trailing byte lands in the high half.
func packBytes(data []byte) []uint16 {
	out := make([]uint16, (len(data)+1)/2)
	for i, b := range data {
		if i%2 == 0 {
			out[i/2] = uint16(b) << 8
		} else {
			out[i/2] |= uint16(b)
		}
	}
	return out
}
