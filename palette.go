package cssengine

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// Palette resolves color names supplied by the embedding application.
type Palette interface {
	// Named returns a color by name, such as "brand".
	Named(name string) (Color, bool)
	// Utility returns the color for a "<name>-<tone>" key, such as
	// "amber-500".
	Utility(key string) (Color, bool)
	// IsBase reports whether name has a tone scale.
	IsBase(name string) bool
}

// ColorPalette is a Palette backed by maps. Names are lower case.
type ColorPalette struct {
	Colors map[string]Color
	Scales map[string]map[int]Color
}

var _ Palette = (*ColorPalette)(nil)

// Named returns the color registered under name.
func (p *ColorPalette) Named(name string) (Color, bool) {
	c, ok := p.Colors[name]
	return c, ok
}

// Utility returns the color for a "<scale>-<tone>" key such as "amber-50".
func (p *ColorPalette) Utility(key string) (Color, bool) {
	i := strings.LastIndexByte(key, '-')
	if i < 0 {
		return Color{}, false
	}
	tone, err := strconv.Atoi(key[i+1:])
	if err != nil {
		return Color{}, false
	}
	c, ok := p.Scales[key[:i]][tone]
	return c, ok
}

// IsBase reports whether name is a color scale.
func (p *ColorPalette) IsBase(name string) bool {
	_, ok := p.Scales[name]
	return ok
}

type paletteFile struct {
	Named  map[string]string         `yaml:"named"`
	Scales map[string]map[int]string `yaml:"scales"`
}

// LoadPalette decodes a palette from YAML:
//
//	named:
//	  brand: "#ff6600"
//	scales:
//	  amber:
//	    50: "#fffbeb"
//
// Colors use any syntax ParseColor accepts. Every invalid color is reported
// in the returned error.
func LoadPalette(r io.Reader) (*ColorPalette, error) {
	var f paletteFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}

	p := &ColorPalette{
		Colors: make(map[string]Color, len(f.Named)),
		Scales: make(map[string]map[int]Color, len(f.Scales)),
	}
	var err error
	for _, name := range slices.Sorted(maps.Keys(f.Named)) {
		c, ok := ParseColor(f.Named[name])
		if !ok {
			err = multierr.Append(err, fmt.Errorf("palette: color %s: invalid value %q", name, f.Named[name]))
			continue
		}
		p.Colors[strings.ToLower(name)] = c
	}
	for _, name := range slices.Sorted(maps.Keys(f.Scales)) {
		scale := f.Scales[name]
		tones := make(map[int]Color, len(scale))
		for _, tone := range slices.Sorted(maps.Keys(scale)) {
			c, ok := ParseColor(scale[tone])
			if !ok {
				err = multierr.Append(err, fmt.Errorf("palette: color %s-%d: invalid value %q", name, tone, scale[tone]))
				continue
			}
			tones[tone] = c
		}
		p.Scales[strings.ToLower(name)] = tones
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

//go:embed palette_tailwind.yaml
var tailwindPalette []byte

var defaultPalette = sync.OnceValue(func() *ColorPalette {
	p, err := LoadPalette(bytes.NewReader(tailwindPalette))
	if err != nil {
		panic(err)
	}
	return p
})

// DefaultPalette returns the Tailwind CSS color palette: 22 color scales with
// tones 50 and 100 through 950. It must not be modified.
func DefaultPalette() *ColorPalette {
	return defaultPalette()
}
