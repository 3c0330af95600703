package cssom

import (
	"math"
	"strconv"
)

// These helpers back the numeric branches of consumeNumber and the
// hex-digit branches of consumeEscapedCodePoint/consumeUnicodeRange. The
// tokenizer never fails outright on malformed numeric text (§4.3.13 builds
// a number from code points it has already validated as digits), so a
// parse error here means an empty run or a value out of range for the
// result type; either defaults to zero rather than propagating an error
// the caller has nowhere to act on.

func hexToInt(digits string) int {
	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0
	}
	return int(v)
}

func parseIntOrZero(digits string) int64 {
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFloatOrZero(digits string) float64 {
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return v
}

func pow10(exp int) float64 {
	return math.Pow(10, float64(exp))
}
