// internal/transport/i2c/transport.go

// Package i2c adapts a kidoman/embd I2C bus to the driver's transport
// contract.
package i2c

import (
	"time"

	"github.com/kidoman/embd"

	"github.com/tamzrod/bme280-bridge/internal/bme280"
)

// Bus implements bme280.Transport over an embd I2C bus.
//
// embd does not expose per-transaction timeouts; the kernel i2c-dev
// driver enforces its own. The timeout argument is accepted for the
// contract and ignored here.
type Bus struct {
	bus embd.I2CBus
}

func New(bus embd.I2CBus) *Bus {
	return &Bus{bus: bus}
}

// Write pushes a raw payload of [register, data...] to the device.
func (b *Bus) Write(addr uint8, buf []byte, timeout time.Duration) bme280.Status {
	_ = timeout

	if b == nil || b.bus == nil {
		return bme280.Fail(bme280.ErrInvalidConfig, "i2c bus not set")
	}
	if len(buf) == 0 {
		return bme280.Fail(bme280.ErrInvalidParam, "empty i2c write")
	}

	var err error
	if len(buf) == 1 {
		err = b.bus.WriteByte(addr, buf[0])
	} else {
		err = b.bus.WriteToReg(addr, buf[0], buf[1:])
	}
	if err != nil {
		return bme280.Fail(bme280.ErrI2C, err.Error())
	}
	return bme280.OK()
}

// WriteRead performs a register-addressed read as one uninterrupted
// transaction. The i2c-dev layer only supports a single address byte
// ahead of the read, which is all the driver ever sends.
func (b *Bus) WriteRead(addr uint8, tx, rx []byte, timeout time.Duration) bme280.Status {
	_ = timeout

	if b == nil || b.bus == nil {
		return bme280.Fail(bme280.ErrInvalidConfig, "i2c bus not set")
	}
	if len(tx) != 1 {
		return bme280.Fail(bme280.ErrInvalidParam, "i2c write-read requires a single register byte")
	}
	if len(rx) == 0 {
		return bme280.Fail(bme280.ErrInvalidParam, "empty i2c read")
	}

	if err := b.bus.ReadFromReg(addr, tx[0], rx); err != nil {
		return bme280.Fail(bme280.ErrI2C, err.Error())
	}
	return bme280.OK()
}
