// Package art holds the embedded Yi Sang illustrations.
package art

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed assets/figure.txt
var figure string

//go:embed assets/blink.txt
var blink string

//go:embed assets/tilt.txt
var tilt string

// ErrUnknownVariant is returned for animation variants other than 1 and 2.
var ErrUnknownVariant = errors.New("unknown animation variant")

// Variants lists the valid animation variant numbers.
var Variants = []int{1, 2}

// HeadColumn is the column of the head outline's left edge (the '/' on the
// figure's second row). The connector tail ends just left of it.
const HeadColumn = 10

// Figure returns the static illustration without a trailing newline.
func Figure() string {
	return trim(figure)
}

// Frames returns the frames of an animation variant in display order.
// Variant 1 blinks, variant 2 tilts the head.
func Frames(variant int) ([]string, error) {
	switch variant {
	case 1:
		return []string{trim(figure), trim(blink)}, nil
	case 2:
		return []string{trim(figure), trim(tilt)}, nil
	default:
		return nil, fmt.Errorf("%w: %d (want 1 or 2)", ErrUnknownVariant, variant)
	}
}

func trim(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
