package gameplay

import (
	"errors"
	"strconv"
	"strings"

	"github.com/automoto/tilerush/config"
)

// ErrInvalidTileCount is returned for tile count text that is not a whole number.
var ErrInvalidTileCount = errors.New("tile count must be a whole number")

// ClampTileCount bounds n to the configured tile count range.
func ClampTileCount(n int) int {
	if n < config.TileCount.Min {
		return config.TileCount.Min
	}
	if n > config.TileCount.Max {
		return config.TileCount.Max
	}
	return n
}

// ParseTileCount reads the tile count text field. Only digits are accepted;
// the parsed value is clamped to the configured range.
func ParseTileCount(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" || !IsDigits(text) {
		return 0, ErrInvalidTileCount
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		// Only digits, so the value overflowed int
		return config.TileCount.Max, nil
	}
	return ClampTileCount(n), nil
}

// IsDigits reports whether s consists of ASCII digits only. The empty string
// counts so the field can be cleared while typing.
func IsDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
