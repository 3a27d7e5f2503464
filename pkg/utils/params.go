package utils

import "strconv"

// ParseOptionalFloat parses a query parameter into an optional float.
// Absent or malformed values mean "unconstrained", never an error.
func ParseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseOptionalInt parses a query parameter into an optional int.
func ParseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// ParsePositiveInt parses a query parameter that must be a positive integer,
// falling back to def when absent, malformed, or non-positive.
func ParsePositiveInt(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
