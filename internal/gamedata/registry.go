package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/roguelike/internal/world"
)

// TemplateRegistry holds loaded templates grouped into palettes by kind.
type TemplateRegistry struct {
	byID   map[string]world.Template
	byKind map[world.Kind]world.Palette
	count  int
}

// NewTemplateRegistry creates a registry from loaded template definitions.
// Palette order follows definition order.
func NewTemplateRegistry(defs []TemplateDef) (*TemplateRegistry, error) {
	r := &TemplateRegistry{
		byID:   make(map[string]world.Template),
		byKind: make(map[world.Kind]world.Palette),
	}
	for i := range defs {
		t, err := defs[i].Template()
		if err != nil {
			return nil, err
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		r.byID[t.ID] = t
		r.byKind[t.Kind] = append(r.byKind[t.Kind], t)
		r.count++
	}
	return r, nil
}

// LoadTemplateRegistry loads and creates a registry from the embedded
// palettes.json, or from path when it is not empty.
func LoadTemplateRegistry(path string) (*TemplateRegistry, error) {
	var (
		defs []TemplateDef
		err  error
	)
	if path != "" {
		defs, err = LoadTemplatesFile(path)
	} else {
		defs, err = LoadTemplates()
	}
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no templates loaded from palettes.json")
	}
	return NewTemplateRegistry(defs)
}

// GetByID returns the template with the given ID.
func (r *TemplateRegistry) GetByID(id string) (world.Template, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// Palettes returns the palettes the level director needs. Food and soda share
// one palette. Every role must have at least one template.
func (r *TemplateRegistry) Palettes() (world.Palettes, error) {
	food := append(world.Palette{}, r.byKind[world.KindFood]...)
	food = append(food, r.byKind[world.KindSoda]...)

	p := world.Palettes{
		Floor:     r.byKind[world.KindFloor],
		OuterWall: r.byKind[world.KindOuterWall],
		Wall:      r.byKind[world.KindWall],
		Food:      food,
		Enemy:     r.byKind[world.KindEnemy],
		Exit:      r.byKind[world.KindExit],
	}
	for kind, palette := range map[string]world.Palette{
		"floor": p.Floor, "outer_wall": p.OuterWall, "wall": p.Wall,
		"food": p.Food, "enemy": p.Enemy, "exit": p.Exit,
	} {
		if len(palette) == 0 {
			return world.Palettes{}, fmt.Errorf("%s tiles: %w", kind, world.ErrEmptyPalette)
		}
	}
	return p, nil
}

// Player returns the template used for the player.
func (r *TemplateRegistry) Player() (world.Template, error) {
	players := r.byKind[world.KindPlayer]
	if len(players) == 0 {
		return world.Template{}, fmt.Errorf("player tiles: %w", world.ErrEmptyPalette)
	}
	return players[0], nil
}

// Count returns the number of templates in the registry.
func (r *TemplateRegistry) Count() int {
	return r.count
}
