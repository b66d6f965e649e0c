// internal/writer/modbus/client.go
package modbus

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// EndpointClient is a single connection to one Modbus endpoint, TCP or
// RTU. It serializes requests because it mutates SlaveId per write.
type EndpointClient struct {
	mu       sync.Mutex
	closeFn  func() error
	setSlave func(uint8)
	client   modbus.Client
}

type Config struct {
	Endpoint string // tcp://host:port or rtu:///dev/ttyX
	Timeout  time.Duration
	Baud     int // rtu only
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	switch {
	case strings.HasPrefix(cfg.Endpoint, "tcp://"):
		h := modbus.NewTCPClientHandler(strings.TrimPrefix(cfg.Endpoint, "tcp://"))
		h.Timeout = cfg.Timeout

		if err := h.Connect(); err != nil {
			return nil, err
		}

		return &EndpointClient{
			closeFn:  h.Close,
			setSlave: func(id uint8) { h.SlaveId = id },
			client:   modbus.NewClient(h),
		}, nil

	case strings.HasPrefix(cfg.Endpoint, "rtu://"):
		h := modbus.NewRTUClientHandler(strings.TrimPrefix(cfg.Endpoint, "rtu://"))
		h.Timeout = cfg.Timeout
		h.BaudRate = cfg.Baud
		h.DataBits = 8
		h.Parity = "N"
		h.StopBits = 1

		if err := h.Connect(); err != nil {
			return nil, err
		}

		return &EndpointClient{
			closeFn:  h.Close,
			setSlave: func(id uint8) { h.SlaveId = id },
			client:   modbus.NewClient(h),
		}, nil

	default:
		return nil, errors.New("writer modbus: endpoint must be tcp:// or rtu://")
	}
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeFn()
}

func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setSlave(unitID)

	qty := uint16(len(regs))
	payload := packRegisters(regs)

	_, err := c.client.WriteMultipleRegisters(addr, qty, payload)
	return err
}

func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
