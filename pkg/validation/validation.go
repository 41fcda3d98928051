// Package validation provides field checks for tuning and session configuration.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTitleLen bounds the window title.
const MaxTitleLen = 64

// Finite rejects NaN and infinities.
func Finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v", field, v)
	}
	return nil
}

// Positive requires a finite value strictly greater than zero.
func Positive(field string, v float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", field, v)
	}
	return nil
}

// NonNegative requires a finite value of zero or more.
func NonNegative(field string, v float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%s cannot be negative, got %v", field, v)
	}
	return nil
}

// InRange requires min <= v <= max.
func InRange(field string, v, min, max float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v < min || v > max {
		return fmt.Errorf("%s out of range: %v (must be %v-%v)", field, v, min, max)
	}
	return nil
}

// PositiveInt requires n > 0.
func PositiveInt(field string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", field, n)
	}
	return nil
}

// Title validates and trims a window title.
func Title(title string) (string, error) {
	if !utf8.ValidString(title) {
		return "", fmt.Errorf("title contains invalid UTF-8 characters")
	}
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", fmt.Errorf("title cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return "", fmt.Errorf("title too long: %d characters (max %d)", utf8.RuneCountInString(trimmed), MaxTitleLen)
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("title contains control characters")
		}
	}
	return trimmed, nil
}

// Collect joins the non-nil errors, or returns nil when all passed.
func Collect(errs ...error) error {
	return errors.Join(errs...)
}
