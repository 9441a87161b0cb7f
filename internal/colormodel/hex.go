package colormodel

import (
	"fmt"
	"strconv"
)

// ToHex encodes c as eight uppercase hex digits in RRGGBBAA order.
// Channels outside [0, 1] are clamped first.
func ToHex(c Color) string {
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("%02X%02X%02X%02X", r, g, b, a)
}

// ParseHex decodes a 6 (RRGGBB) or 8 (RRGGBBAA) digit hex string.
// A six digit string yields an opaque color.
//
// The second result is false when s has the wrong length or contains a
// character that is not a hex digit; the returned Color is then the zero
// value and callers should keep whatever color they had.
func ParseHex(s string) (Color, bool) {
	if len(s) != 6 && len(s) != 8 {
		return Color{}, false
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		pair := s[i*2 : i*2+2]
		if !isHexDigit(pair[0]) || !isHexDigit(pair[1]) {
			return Color{}, false
		}
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return Color{}, false
		}
		ch[i] = uint8(v)
	}

	return FromBytes(ch[0], ch[1], ch[2], ch[3]), true
}

// ParseHexPrefixed is ParseHex that also accepts a leading '#'.
func ParseHexPrefixed(s string) (Color, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	return ParseHex(s)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
