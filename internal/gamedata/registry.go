package gamedata

import (
	"errors"
	"fmt"
)

// ErrUnknownLayout is returned when a layout ID is not registered.
var ErrUnknownLayout = errors.New("unknown layout")

// LayoutRegistry holds loaded layout definitions keyed by ID.
type LayoutRegistry struct {
	layouts map[string]*LayoutDef
	all     []LayoutDef
}

// NewLayoutRegistry creates a registry from loaded layout definitions.
func NewLayoutRegistry(layouts []LayoutDef) *LayoutRegistry {
	registry := &LayoutRegistry{
		layouts: make(map[string]*LayoutDef),
		all:     layouts,
	}
	for i := range layouts {
		registry.layouts[layouts[i].ID] = &layouts[i]
	}
	return registry
}

// LoadLayoutRegistry loads and creates a registry from the embedded layouts.json.
func LoadLayoutRegistry() (*LayoutRegistry, error) {
	layouts, err := LoadLayouts()
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, errors.New("no layouts loaded from layouts.json")
	}
	return NewLayoutRegistry(layouts), nil
}

// Get returns the layout with the given ID.
func (r *LayoutRegistry) Get(id string) (LayoutDef, error) {
	layout, ok := r.layouts[id]
	if !ok {
		return LayoutDef{}, fmt.Errorf("%w: %q", ErrUnknownLayout, id)
	}
	return *layout, nil
}

// All returns all layout definitions in file order.
func (r *LayoutRegistry) All() []LayoutDef {
	return r.all
}

// Count returns the number of layouts in the registry.
func (r *LayoutRegistry) Count() int {
	return len(r.all)
}
