package gamedata

import (
	"fmt"

	"github.com/samdwyer/roguelike/internal/world"
)

// TemplateDef defines a tile template loaded from JSON.
type TemplateDef struct {
	ID           string `json:"id"`                     // Unique identifier (e.g., "wall_crate")
	Kind         string `json:"kind"`                   // Board role (e.g., "wall")
	Glyph        string `json:"glyph"`                  // Single character for rendering
	DamagedGlyph string `json:"damagedGlyph,omitempty"` // Character once damaged
	Color        string `json:"color"`                  // Hex color code (e.g., "#8B4513")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TemplateDef) GlyphRune() rune {
	return firstRune(d.Glyph, '?')
}

// Template converts the definition into a world template.
func (d *TemplateDef) Template() (world.Template, error) {
	kind, ok := world.ParseKind(d.Kind)
	if !ok {
		return world.Template{}, fmt.Errorf("template %s: unknown kind %q", d.ID, d.Kind)
	}
	return world.Template{
		ID:           d.ID,
		Kind:         kind,
		Glyph:        d.GlyphRune(),
		DamagedGlyph: firstRune(d.DamagedGlyph, 0),
		Color:        d.Color,
	}, nil
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// TemplatesFile represents the structure of palettes.json.
type TemplatesFile struct {
	Templates []TemplateDef `json:"templates"`
}

// LoadTemplates loads template definitions from the embedded palettes.json file.
func LoadTemplates() ([]TemplateDef, error) {
	file, err := Load[TemplatesFile]("palettes.json")
	if err != nil {
		return nil, err
	}
	return file.Templates, nil
}

// LoadTemplatesFile loads template definitions from a palettes file on disk.
func LoadTemplatesFile(path string) ([]TemplateDef, error) {
	file, err := LoadFile[TemplatesFile](path)
	if err != nil {
		return nil, err
	}
	return file.Templates, nil
}
