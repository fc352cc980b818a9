package epoch

import (
	"errors"
	"fmt"
)

// ConversionError represents a failed epoch-to-datetime conversion.
//
// Conversions fail for exactly two reasons:
//   - Range overflow: the civil result would fall outside MinYear..MaxYear,
//     or applying the format offset overflows int64.
//   - Value too large: the input magnitude exceeds a precomputed safe limit
//     (currently only the ICQ day count), rejected before any arithmetic.
//
// Backward (datetime-to-epoch) conversions never fail; they are total by
// design and documented as lossy at extreme magnitudes instead.
type ConversionError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Format names the conversion format, when known.
	Format string
}

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeRangeOverflow indicates the result would leave the supported
	// calendar range or an offset addition overflowed.
	ErrCodeRangeOverflow ErrorCode = "RANGE_OVERFLOW"

	// ErrCodeValueTooLarge indicates the input exceeds a precomputed safe
	// limit, rejected before any date arithmetic.
	ErrCodeValueTooLarge ErrorCode = "VALUE_TOO_LARGE"
)

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("%s: %s (format=%s)", e.Code, e.Message, e.Format)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsRangeOverflow returns true if the error is a range overflow.
// Uses errors.As to handle wrapped errors.
func IsRangeOverflow(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeRangeOverflow
	}
	return false
}

// IsValueTooLarge returns true if the error is a too-large input rejection.
// Uses errors.As to handle wrapped errors.
func IsValueTooLarge(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeValueTooLarge
	}
	return false
}

func newRangeOverflow(format string, msg string, args ...any) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeRangeOverflow,
		Message: fmt.Sprintf(msg, args...),
		Format:  format,
	}
}

func newValueTooLarge(format string, msg string, args ...any) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeValueTooLarge,
		Message: fmt.Sprintf(msg, args...),
		Format:  format,
	}
}
