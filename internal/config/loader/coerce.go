package loader

import (
	"math"
	"strconv"
	"strings"
)

// Atoi mirrors C atoi: leading whitespace, an optional sign, then as many
// decimal digits as present. Anything else yields 0. The result saturates at
// the 32-bit range. ok reports whether s, ignoring surrounding whitespace, was
// a well-formed integer within that range.
//
// A malformed numeric field therefore silently becomes 0 rather than keeping
// its default; strict mode turns !ok into an error.
func Atoi(s string) (n int, ok bool) {
	if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32); err == nil {
		return int(v), true
	}

	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var v int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + int64(s[i]-'0')
		if v > math.MaxInt32+1 {
			v = math.MaxInt32 + 1
		}
	}

	if neg {
		v = -v
	}
	switch {
	case v > math.MaxInt32:
		v = math.MaxInt32
	case v < math.MinInt32:
		v = math.MinInt32
	}
	return int(v), false
}

// ParseBool accepts exactly "true"; every other token is false.
func ParseBool(s string) bool {
	return s == "true"
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
