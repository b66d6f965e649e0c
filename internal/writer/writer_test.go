// internal/writer/writer_test.go
package writer

import (
	"errors"
	"testing"

	"github.com/tamzrod/bme280-bridge/internal/poller"
)

// ---- fake endpoint client ----

type fakeEndpointClient struct {
	writes   []writeCall
	lastRegs []uint16
	fail     bool
}

type writeCall struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

func (f *fakeEndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("endpoint down")
	}
	cp := append([]uint16(nil), regs...)
	f.writes = append(f.writes, writeCall{unitID: unitID, addr: addr, regs: cp})
	f.lastRegs = cp
	return nil
}

// ---- tests ----

func TestWriter_BlocksPackedBackToBack(t *testing.T) {
	fake := &fakeEndpointClient{}

	plan := Plan{
		SensorID: "cabin",
		Data: DataPlan{
			Endpoint: "ep1",
			UnitID:   2,
			Base:     100,
		},
	}

	w := New(plan, map[string]endpointClient{"ep1": fake})

	res := poller.PollResult{
		SensorID: "cabin",
		Blocks: []poller.BlockResult{
			{Reg: 0xF7, Data: []byte{0x10, 0x20, 0x30}}, // 2 regs (odd tail)
			{Reg: 0xD0, Data: []byte{0x60}},             // 1 reg
		},
	}

	if err := w.Write(res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(fake.writes))
	}

	first := fake.writes[0]
	if first.addr != 100 || first.unitID != 2 {
		t.Fatalf("first block: addr=%d unit=%d", first.addr, first.unitID)
	}
	if len(first.regs) != 2 || first.regs[0] != 0x1020 || first.regs[1] != 0x3000 {
		t.Fatalf("first block packing: %v", first.regs)
	}

	second := fake.writes[1]
	if second.addr != 102 { // 100 + 2 regs
		t.Fatalf("second block addr: got %d want 102", second.addr)
	}
	if len(second.regs) != 1 || second.regs[0] != 0x6000 {
		t.Fatalf("second block packing: %v", second.regs)
	}
}

func TestWriter_FailedCycleWritesNothing(t *testing.T) {
	fake := &fakeEndpointClient{}

	plan := Plan{
		SensorID: "cabin",
		Data:     DataPlan{Endpoint: "ep1", UnitID: 1, Base: 0},
	}

	w := New(plan, map[string]endpointClient{"ep1": fake})

	res := poller.PollResult{
		SensorID: "cabin",
		Err:      errors.New("bme280: I2C_ERROR"),
	}

	if err := w.Write(res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.writes) != 0 {
		t.Fatalf("failed cycle must not write data, got %d writes", len(fake.writes))
	}
}

func TestWriter_MissingClient(t *testing.T) {
	plan := Plan{
		SensorID: "cabin",
		Data:     DataPlan{Endpoint: "ep-missing", UnitID: 1, Base: 0},
	}

	w := New(plan, map[string]endpointClient{})

	res := poller.PollResult{
		Blocks: []poller.BlockResult{{Reg: 0xF7, Data: []byte{1, 2}}},
	}

	if err := w.Write(res); err == nil {
		t.Fatalf("expected error for missing endpoint client")
	}
}
