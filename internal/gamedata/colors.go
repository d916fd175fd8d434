package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidColor is returned for color strings that are not #RRGGBB.
var ErrInvalidColor = errors.New("gamedata: invalid color")

// ParseHexColor converts "#RRGGBB" (the # is optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("%w: %q is not 6 hex digits", ErrInvalidColor, hex)
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
