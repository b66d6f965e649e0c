// internal/bme280/regs.go
package bme280

// The driver owns only the identity fragment of the register map; the
// measurement and calibration registers belong to the collaborators
// built on ReadRegs/WriteRegs.
const (
	RegChipID uint8 = 0xD0
	ChipID    uint8 = 0x60 // expected identity byte for a BME280
)

// MaxWriteLen bounds the data of a single register write. Longer
// writes are rejected, never truncated.
const MaxWriteLen = 16

// ReadRegs reads len(buf) bytes starting at startReg as one tracked
// write-read transaction (the register address and the read must not
// be separated on the wire).
func (d *Driver) ReadRegs(nowMs uint32, startReg uint8, buf []byte) Status {
	if !d.initialized {
		return Fail(ErrNotInitialized, "Begin not called")
	}
	if len(buf) == 0 {
		return Fail(ErrInvalidParam, "empty read buffer")
	}

	return d.busWriteReadTracked(nowMs, []byte{startReg}, buf)
}

// WriteRegs writes data starting at startReg as one tracked write.
// The payload on the wire is [startReg, data...].
func (d *Driver) WriteRegs(nowMs uint32, startReg uint8, data []byte) Status {
	if !d.initialized {
		return Fail(ErrNotInitialized, "Begin not called")
	}
	if len(data) == 0 {
		return Fail(ErrInvalidParam, "empty write buffer")
	}
	if len(data) > MaxWriteLen {
		return Fail(ErrInvalidParam, "register write too long")
	}

	payload := make([]byte, 0, len(data)+1)
	payload = append(payload, startReg)
	payload = append(payload, data...)

	return d.busWriteTracked(nowMs, payload)
}
