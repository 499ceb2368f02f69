// Package assets provides the sprite sheet used to draw the falling shapes.
// Sprites are ASCII art parsed from an embedded YAML sheet.
package assets

import (
	_ "embed"
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ie-die/internal/core"
)

//go:embed data/sprites.yaml
var defaultSheetYAML []byte

// Variant is the kind of picture a shape is drawn with.
type Variant int

const (
	VariantIE Variant = iota
	VariantFirefox
	VariantChrome
	VariantOpera
)

// String returns the key of the variant in the sprite sheet.
func (v Variant) String() string {
	switch v {
	case VariantIE:
		return "ie"
	case VariantFirefox:
		return "firefox"
	case VariantChrome:
		return "chrome"
	case VariantOpera:
		return "opera"
	default:
		return "unknown"
	}
}

// PickVariant chooses the picture for a new shape. Hostile shapes are
// always IE; friendly ones are Firefox, Chrome or Opera with 30/30/40
// percent odds.
func PickVariant(isEnemy bool, rng *rand.Rand) Variant {
	if isEnemy {
		return VariantIE
	}
	return friendlyVariant(rng.Intn(100))
}

func friendlyVariant(roll int) Variant {
	switch {
	case roll < 30:
		return VariantFirefox
	case roll < 60:
		return VariantChrome
	default:
		return VariantOpera
	}
}

// Sprite is a decoded picture.
type Sprite struct {
	Variant Variant
	Color   core.Color
	Art     []string
}

// Width returns the widest art row in runes.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Art {
		w = core.Max(w, len([]rune(row)))
	}
	return w
}

// Height returns the number of art rows.
func (s Sprite) Height() int {
	return len(s.Art)
}

type sheetFile struct {
	Sprites map[string]struct {
		Color string   `yaml:"color"`
		Art   []string `yaml:"art"`
	} `yaml:"sprites"`
}

// Sheet holds every decoded sprite.
type Sheet struct {
	sprites map[Variant]Sprite
}

// ParseSheet decodes a YAML sprite sheet. Unknown sprite names are ignored;
// bad colors and empty art are errors.
func ParseSheet(data []byte) (*Sheet, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: yaml unmarshal: %w", err)
	}

	sheet := &Sheet{sprites: make(map[Variant]Sprite)}
	for _, v := range []Variant{VariantIE, VariantFirefox, VariantChrome, VariantOpera} {
		raw, ok := f.Sprites[v.String()]
		if !ok {
			continue
		}
		color, ok := core.ParseColor(raw.Color)
		if !ok {
			return nil, fmt.Errorf("assets: sprite %s: unknown color %q", v, raw.Color)
		}
		if len(raw.Art) == 0 {
			return nil, fmt.Errorf("assets: sprite %s: no art", v)
		}
		sheet.sprites[v] = Sprite{Variant: v, Color: color, Art: raw.Art}
	}
	return sheet, nil
}

// DefaultSheet decodes the embedded sprite sheet.
func DefaultSheet() (*Sheet, error) {
	return ParseSheet(defaultSheetYAML)
}

// Sprite returns the picture of a variant.
func (s *Sheet) Sprite(v Variant) (Sprite, error) {
	sp, ok := s.sprites[v]
	if !ok {
		return Sprite{}, fmt.Errorf("assets: no sprite for %s", v)
	}
	return sp, nil
}
