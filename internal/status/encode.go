// internal/status/encode.go
package status

// Encode converts a Snapshot into a full device status block.
// Layout is protocol-locked. Device name slots are left zero; the
// writer owns name encoding.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotStateCode] = s.StateCode
	regs[SlotConsecutiveFailures] = s.ConsecutiveFailures
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotLastErrorDetail] = s.LastErrorDetail
	regs[SlotTotalSuccessHi] = uint16(s.TotalSuccess >> 16)
	regs[SlotTotalSuccessLo] = uint16(s.TotalSuccess)
	regs[SlotTotalFailuresHi] = uint16(s.TotalFailures >> 16)
	regs[SlotTotalFailuresLo] = uint16(s.TotalFailures)
	regs[SlotSecondsInError] = s.SecondsInError

	return regs
}
