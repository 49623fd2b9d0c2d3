// Package color provides the 8-bit RGB value type used by every palette and
// the linear-light brightness adjustments derived colors are built from.
package color

import (
	"fmt"
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit sRGB triple.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromUint32 builds a Color from a 0xrrggbb literal.
func FromUint32(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// FromRGBA adapts an image/color value such as the CSS names in
// golang.org/x/image/colornames. Alpha is ignored.
func FromRGBA(c stdcolor.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// ParseHex parses "#rrggbb" (or the 3-digit short form).
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// MustHex is ParseHex for palette literals; it panics on malformed input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Lighten moves every channel toward white in linear light by factor.
// 0 leaves the color unchanged and 1 yields white. Negative factors move
// toward black; out-of-range results saturate.
func Lighten(c Color, factor float64) Color {
	r, g, b := c.toColorful().LinearRgb()
	return fromColorful(colorful.LinearRgb(
		lightenChannel(r, factor),
		lightenChannel(g, factor),
		lightenChannel(b, factor),
	))
}

// Darken moves every channel toward black in linear light by factor.
// It is Lighten with the factor negated.
func Darken(c Color, factor float64) Color {
	return Lighten(c, -factor)
}

// WithSaturationValue keeps the hue of c and replaces its HSV saturation and
// value.
func WithSaturationValue(c Color, saturation, value float64) Color {
	h, _, _ := c.toColorful().Hsv()
	return fromColorful(colorful.Hsv(h, saturation, value))
}

func lightenChannel(l, factor float64) float64 {
	// The distance toward the target bound scales the step, so a factor
	// of 1 lands exactly on white (or black when negated).
	diff := 1 - l
	if factor < 0 {
		diff = l
	}
	if diff < 0 {
		diff = 0
	}
	out := l + diff*factor
	if out < 0 {
		return 0
	}
	return out
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
