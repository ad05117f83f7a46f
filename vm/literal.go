package vm

import (
	"strconv"
	"strings"
)

// ParseLiteral parses a numeric literal token. Underscores are digit-group
// separators and are stripped first; a 0x prefix selects base-16,
// everything else is decimal (integer or float).
func ParseLiteral(token string) (value float64, err error) {
	text := strings.ReplaceAll(token, "_", "")

	if rest, ok := strings.CutPrefix(text, "0x"); ok {
		var v64 uint64
		v64, err = strconv.ParseUint(rest, 16, 64)
		if err != nil {
			err = ErrLiteralInvalid(token)
			return
		}
		value = float64(v64)
		return
	}

	value, err = strconv.ParseFloat(text, 64)
	if err != nil {
		err = ErrLiteralInvalid(token)
	}

	return
}
