// internal/bme280/status.go
package bme280

import "fmt"

// Err classifies every outcome the driver can report.
type Err uint8

const (
	ErrOK Err = iota
	ErrNotInitialized
	ErrInvalidConfig
	ErrInvalidParam
	ErrI2C
	ErrTimeout
	ErrDeviceNotFound
	ErrChipIDMismatch
)

func (e Err) String() string {
	switch e {
	case ErrOK:
		return "OK"
	case ErrNotInitialized:
		return "NOT_INITIALIZED"
	case ErrInvalidConfig:
		return "INVALID_CONFIG"
	case ErrInvalidParam:
		return "INVALID_PARAM"
	case ErrI2C:
		return "I2C_ERROR"
	case ErrTimeout:
		return "TIMEOUT"
	case ErrDeviceNotFound:
		return "DEVICE_NOT_FOUND"
	case ErrChipIDMismatch:
		return "CHIP_ID_MISMATCH"
	default:
		return "UNKNOWN"
	}
}

// Status is the uniform result of every fallible driver operation.
// The zero value is success; it is the only value for which Ok()
// returns true.
type Status struct {
	Code   Err
	Detail int32 // optional numeric payload (e.g. the observed chip id)
	Msg    string
}

// OK returns the distinguished success Status.
func OK() Status {
	return Status{}
}

// Fail builds a failure Status with no numeric detail.
func Fail(code Err, msg string) Status {
	return Status{Code: code, Msg: msg}
}

// FailDetail builds a failure Status carrying a numeric detail.
func FailDetail(code Err, msg string, detail int32) Status {
	return Status{Code: code, Msg: msg, Detail: detail}
}

// Ok reports whether the Status is the success value.
func (s Status) Ok() bool {
	return s.Code == ErrOK
}

// Err converts the Status into a plain error for callers living in
// error-returning code. Returns nil on success.
func (s Status) Err() error {
	if s.Ok() {
		return nil
	}
	if s.Msg != "" {
		return fmt.Errorf("bme280: %s: %s", s.Code, s.Msg)
	}
	return fmt.Errorf("bme280: %s", s.Code)
}
