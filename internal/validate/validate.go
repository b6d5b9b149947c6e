// Package validate turns raw console input into the clean values the
// registry expects. Every function is pure: raw string in, value or error out.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/hackgods/clinic-registry/internal/hospital"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MinPhoneDigits = 10
)

var (
	ErrEmpty       = errors.New("value is required")
	ErrNotAlpha    = errors.New("please enter letters only")
	ErrNotNumber   = errors.New("enter a whole number")
	ErrPhone       = errors.New("telephone number must be at least 10 digits")
	ErrDate        = errors.New("invalid date format; please use YYYY-MM-DD")
	ErrSlotFormat  = errors.New("format error; use 'YYYY-MM-DD HH:MM'")
	ErrAgeMismatch = errors.New("age does not match date of birth")
	ErrFutureDOB   = errors.New("date of birth is in the future")
)

// Name accepts letters with optional spaces and hyphens.
func Name(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(v)
	if cleaned == "" {
		return "", ErrNotAlpha
	}
	for _, r := range cleaned {
		if !unicode.IsLetter(r) {
			return "", ErrNotAlpha
		}
	}
	return v, nil
}

// NonNegativeInt accepts digits only, so signs and spaces are rejected.
func NonNegativeInt(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if !allDigits(v) {
		return 0, ErrNotNumber
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotNumber, err)
	}
	return n, nil
}

// Fee is a non-negative amount in whole currency units.
func Fee(raw string) (int64, error) {
	v := strings.TrimSpace(raw)
	if !allDigits(v) {
		return 0, ErrNotNumber
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotNumber, err)
	}
	return n, nil
}

func Phone(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if !allDigits(v) || len(v) < MinPhoneDigits {
		return "", ErrPhone
	}
	return v, nil
}

func DateOfBirth(raw string) (time.Time, error) {
	dob, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrDate
	}
	return dob, nil
}

// AgeOn returns the full years elapsed between dob and today, one less when
// today's month and day come before the birthday.
func AgeOn(dob, today time.Time) int {
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years
}

// CheckAge verifies an entered age against the one computed from dob.
func CheckAge(dob time.Time, age int, today time.Time) error {
	if dob.After(today) {
		return ErrFutureDOB
	}
	if calc := AgeOn(dob, today); calc != age {
		return fmt.Errorf("%w: calculated age is %d based on DOB", ErrAgeMismatch, calc)
	}
	return nil
}

// Slot parses a "YYYY-MM-DD HH:MM" schedule entry.
func Slot(raw string) (hospital.Slot, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return hospital.Slot{}, ErrSlotFormat
	}
	if _, err := time.Parse(DateLayout, parts[0]); err != nil {
		return hospital.Slot{}, ErrSlotFormat
	}
	if _, err := time.Parse(TimeLayout, parts[1]); err != nil || len(parts[1]) != len(TimeLayout) {
		return hospital.Slot{}, ErrSlotFormat
	}
	return hospital.Slot{Date: parts[0], Time: parts[1]}, nil
}

// Required rejects blank input.
func Required(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", ErrEmpty
	}
	return v, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
