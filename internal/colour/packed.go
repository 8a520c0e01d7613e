// Package colour provides colour-space conversion, scheme generation and
// perceptual colour distance for packed RGB colours.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColour is returned when a colour string cannot be parsed.
var ErrInvalidColour = errors.New("invalid colour")

// Packed is a colour packed as 0xAARRGGBB, the representation used by the
// host platform. Alpha is carried but never interpreted.
type Packed uint32

// Black and White are the two results of ContrastingColour.
const (
	Black Packed = 0xff000000
	White Packed = 0xffffffff
)

// Compose packs 8-bit channels into an opaque colour.
func Compose(r, g, b uint8) Packed {
	return Packed(0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Decompose extracts the 8-bit red, green and blue channels.
func Decompose(c Packed) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Rgb packs integer channels, clamping each to [0, 255].
func Rgb(r, g, b int) Packed {
	return Compose(clampChannel(r), clampChannel(g), clampChannel(b))
}

// ComposeFloat packs fractional channel values. Each value is truncated
// toward zero, then clamped to [0, 255]; NaN becomes 0.
func ComposeFloat(r, g, b float64) Packed {
	return Compose(truncChannel(r), truncChannel(g), truncChannel(b))
}

func truncChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// Red returns the red channel.
func (c Packed) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Packed) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Packed) Blue() uint8 { return uint8(c) }

// RGBA implements color.Color. The colour is treated as opaque.
func (c Packed) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 0xff}.RGBA()
}

// Hex returns the colour as a hex string (e.g., "#1a2b3c").
func (c Packed) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// String returns the colour in the format "rgb(r, g, b)".
func (c Packed) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red(), c.Green(), c.Blue())
}

// FromColor converts any color.Color to a Packed colour.
func FromColor(c color.Color) Packed {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return Compose(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseColour parses "#rgb", "#rrggbb", "rgb(r, g, b)" or an SVG colour
// keyword such as "cornflowerblue".
func ParseColour(s string) (Packed, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}

	if strings.HasPrefix(in, "#") {
		return parseHex(in[1:], s)
	}

	if strings.HasPrefix(in, "rgb(") && strings.HasSuffix(in, ")") {
		return parseRGBFunc(in[4:len(in)-1], s)
	}

	if named, ok := colornames.Map[in]; ok {
		return FromColor(named), nil
	}

	// Bare hex without the leading '#'.
	if len(in) == 6 || len(in) == 3 {
		if c, err := parseHex(in, s); err == nil {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidColour, s)
}

func parseHex(hex, orig string) (Packed, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q: hex colours need 3 or 6 digits", ErrInvalidColour, orig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidColour, orig, err)
	}
	return Packed(0xff000000 | uint32(v)), nil
}

func parseRGBFunc(body, orig string) (Packed, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q: expected three channels", ErrInvalidColour, orig)
	}

	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidColour, orig, err)
		}
		if v < 0 || v > 255 {
			return 0, fmt.Errorf("%w: %q: channel %d out of range", ErrInvalidColour, orig, v)
		}
		ch[i] = v
	}
	return Rgb(ch[0], ch[1], ch[2]), nil
}
