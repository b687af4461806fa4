package gauge

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseDepth reads the leading decimal number of raw, ignoring anything after
// it, so "156cm" reads as 156. Leading whitespace is skipped. A leading
// "Infinity" is accepted and later clamped like any other oversized reading.
// ok is false when raw does not start with a number.
func ParseDepth(raw string) (float64, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := 1.0
	unsigned := s
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		if s[0] == '-' {
			sign = -1
		}
		unsigned = s[1:]
	}
	if strings.HasPrefix(unsigned, "Infinity") {
		return math.Inf(int(sign)), true
	}

	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Overflow yields ±Inf and underflow yields ±0, both usable.
			return v, true
		}
		return 0, false
	}
	return v, true
}
