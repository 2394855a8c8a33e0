package util

import (
	"math"
	"strconv"
)

// FormatValueFactor renders value with the nearest SPICE scale suffix,
// e.g. 1500 -> "1.5k", 4.7e-6 -> "4.7u". unit is appended verbatim.
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0:
		return "0" + unit
	case absValue >= 1e12:
		return formatMantissa(value/1e12) + "t" + unit
	case absValue >= 1e9:
		return formatMantissa(value/1e9) + "g" + unit
	case absValue >= 1e6:
		return formatMantissa(value/1e6) + "meg" + unit
	case absValue >= 1e3:
		return formatMantissa(value/1e3) + "k" + unit
	case absValue >= 1:
		return formatMantissa(value) + unit
	case absValue >= 1e-3:
		return formatMantissa(value*1e3) + "m" + unit
	case absValue >= 1e-6:
		return formatMantissa(value*1e6) + "u" + unit
	case absValue >= 1e-9:
		return formatMantissa(value*1e9) + "n" + unit
	case absValue >= 1e-12:
		return formatMantissa(value*1e12) + "p" + unit
	case absValue >= 1e-15:
		return formatMantissa(value*1e15) + "f" + unit
	default:
		return strconv.FormatFloat(value, 'e', -1, 64) + unit
	}
}

// FormatFloat is the plain shortest representation used for untyped numbers.
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// 6 significant digits hides binary noise left by the scaling above.
func formatMantissa(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
