// internal/status/constants.go
package status

// Device Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per sensor.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotStateCode holds the driver availability state.
const SlotStateCode = 0

// SlotConsecutiveFailures holds the failure count since the last success.
const SlotConsecutiveFailures = 1

// SlotLastErrorCode holds the kind of the most recent tracked failure.
const SlotLastErrorCode = 2

// SlotLastErrorDetail holds the numeric detail of the most recent failure.
const SlotLastErrorDetail = 3

// Lifetime counters are 32-bit, split high word first.
const SlotTotalSuccessHi = 4
const SlotTotalSuccessLo = 5
const SlotTotalFailuresHi = 6
const SlotTotalFailuresLo = 7

// SlotSecondsInError holds how long the sensor has been unhealthy.
const SlotSecondsInError = 8

// ---- RESERVED RANGE ----

// Slots 9-10 are reserved for future use.
const SlotReservedStart = 9
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored.
const DeviceNameMaxChars = 16

// ---- STATE CODES ----

// StateUninit represents a driver that is not initialized.
const StateUninit uint16 = 0

// StateReady represents a healthy sensor.
const StateReady uint16 = 1

// StateDegraded represents a sensor with recent failures below threshold.
const StateDegraded uint16 = 2

// StateOffline represents a sensor past its offline threshold.
const StateOffline uint16 = 3
