package render

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Palette maps the two cell states to colors
type Palette struct {
	Dead  color.RGBA
	Alive color.RGBA
}

var namedColors = map[string]color.RGBA{
	"black":  {0, 0, 0, 255},
	"white":  {255, 255, 255, 255},
	"red":    {255, 0, 0, 255},
	"green":  {0, 255, 0, 255},
	"blue":   {0, 0, 255, 255},
	"yellow": {255, 255, 0, 255},
	"gray":   {128, 128, 128, 255},
}

// DefaultPalette is the binary colormap: white for dead cells, black for live ones
func DefaultPalette() Palette {
	return Palette{Dead: namedColors["white"], Alive: namedColors["black"]}
}

// ParseColor accepts a color name or a #rrggbb hex string
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}

	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "[ParseColor] unsupported color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ParsePalette builds a palette from a dead color and an alive color; empty
// strings keep the default for that state
func ParsePalette(dead, alive string) (Palette, error) {
	p := DefaultPalette()
	if dead != "" {
		c, err := ParseColor(dead)
		if err != nil {
			return p, err
		}
		p.Dead = c
	}
	if alive != "" {
		c, err := ParseColor(alive)
		if err != nil {
			return p, err
		}
		p.Alive = c
	}
	return p, nil
}

// Hex returns the palette colors as #rrggbb strings, dead first
func (p Palette) Hex() (dead, alive string) {
	return hex(p.Dead), hex(p.Alive)
}

func hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
