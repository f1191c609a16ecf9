package utils

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// FlexFloat is a float64 that unmarshals from either a JSON number or a
// numeric string, since form-driven presentation surfaces send both.
// Non-finite values are rejected at parse time so the engine never sees
// NaN or infinity.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("numeric value %q is not finite", s)
	}
	*f = FlexFloat(v)
	return nil
}

// Float returns the parsed value, or fallback when f is nil.
func (f *FlexFloat) Float(fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return float64(*f)
}
