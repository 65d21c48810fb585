package worldmap

import (
	"fmt"
	"sort"

	dmath "github.com/yohamta/donburi/features/math"
)

func pt(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

// builtinWorlds are the hand-drawn paths shipped with the game (960x640 playfield).
var builtinWorlds = map[string]Path{
	"tavern": {
		pt(0, 120), pt(260, 120), pt(260, 320), pt(560, 320),
		pt(560, 140), pt(820, 140), pt(820, 500), pt(960, 500),
	},
	"forest": {
		pt(0, 540), pt(180, 540), pt(180, 100), pt(420, 100), pt(420, 460),
		pt(680, 460), pt(680, 200), pt(960, 200),
	},
	"harbour": {
		pt(480, 0), pt(480, 160), pt(140, 160), pt(140, 400),
		pt(800, 400), pt(800, 580), pt(300, 580), pt(300, 640),
	},
}

// Registry maps world ids to paths. A zero Registry is not usable; use NewRegistry.
type Registry struct {
	paths map[string]Path
}

// NewRegistry returns a registry preloaded with the built-in worlds.
func NewRegistry() *Registry {
	r := &Registry{paths: make(map[string]Path, len(builtinWorlds))}
	for id, p := range builtinWorlds {
		r.paths[id] = p
	}
	return r
}

// Register adds or replaces a world path.
func (r *Registry) Register(id string, p Path) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("world %q: %w", id, err)
	}
	r.paths[id] = p.Clone()
	return nil
}

// Path returns a copy of the path for a world id.
func (r *Registry) Path(id string) (Path, error) {
	p, ok := r.paths[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorld, id)
	}
	return p.Clone(), nil
}

// Worlds lists the registered world ids in sorted order.
func (r *Registry) Worlds() []string {
	ids := make([]string, 0, len(r.paths))
	for id := range r.paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
