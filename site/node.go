// Package site is the data provider for the galaxy: the ordered, read-only list of sites the
// scene renders as nodes, loaded from TOML, YAML, SQLite, or the embedded default catalog
package site

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Node is one site entry, immutable after load
type Node struct {
	ID          string
	Name        string
	URL         string
	Color       Color
	Position    math32.Vector3
	HasPosition bool // false lets the layout builder assign an orbit slot
	Category    string
	Description string
}

// Color is packed 0xRRGGBB
type Color uint32

// ParseColor accepts "#rrggbb" or "0xrrggbb"
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = "#" + s[2:]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// FromColorful packs a colorful color, clamping out-of-gamut channels
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns the 8-bit channels
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Colorful converts to a colorful color for blending
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex formats as "#rrggbb"
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// StableID derives a deterministic id for records that carry none
func StableID(name, url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url+"#"+name)).String()
}
