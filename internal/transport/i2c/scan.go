// internal/transport/i2c/scan.go
package i2c

import "github.com/kidoman/embd"

// 7-bit address space minus the reserved ranges.
const (
	scanFirst uint8 = 0x08
	scanLast  uint8 = 0x77
)

// Scan probes every assignable 7-bit address with a single read and
// returns the addresses that acknowledged. Diagnostic helper for
// bringup; it bypasses all driver bookkeeping.
func Scan(bus embd.I2CBus) []uint8 {
	var found []uint8
	for addr := scanFirst; addr <= scanLast; addr++ {
		if _, err := bus.ReadByte(addr); err == nil {
			found = append(found, addr)
		}
	}
	return found
}
