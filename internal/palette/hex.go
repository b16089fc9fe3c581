package palette

import (
	"fmt"
	"strconv"
	"strings"

	appErrors "unfocol/internal/errors"
	"unfocol/internal/gradient"
)

// ParseHex decodes "rrggbb" with an optional "#" or "0x" prefix.
func ParseHex(s string) (gradient.RGB, error) {
	digits := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(digits, "#"):
		digits = digits[1:]
	case strings.HasPrefix(digits, "0x"):
		digits = digits[2:]
	}
	if len(digits) != 6 {
		return gradient.RGB{}, invalidColor(s, fmt.Errorf("want 6 hex digits, got %d", len(digits)))
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return gradient.RGB{}, invalidColor(s, err)
		}
		ch[i] = uint8(v)
	}
	return gradient.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func invalidColor(s string, err error) error {
	return appErrors.New(appErrors.CodeInvalidColor, fmt.Sprintf("invalid color %q", s), err)
}
