package worldmap

import (
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

// PathLayerName is the object group that holds enemy path polylines.
const PathLayerName = "EnemyPath"

// LoadTMX parses a Tiled map and returns one path per polyline object in the
// EnemyPath group, keyed by object name. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (map[string]Path, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	paths := make(map[string]Path)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != PathLayerName {
			continue
		}
		for _, o := range og.Objects {
			if len(o.PolyLines) == 0 {
				continue
			}
			polyline := o.PolyLines[0]
			if polyline.Points == nil {
				continue
			}
			// Convert polyline points to world coordinates
			p := make(Path, 0, len(*polyline.Points))
			for _, point := range *polyline.Points {
				p = append(p, dmath.Vec2{X: o.X + point.X, Y: o.Y + point.Y})
			}
			name := o.Name
			if name == "" {
				name = fmt.Sprintf("path-%d", o.ID)
			}
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("TMX %s object %q: %w", tmxPath, name, err)
			}
			paths[name] = p
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("TMX %s: no polylines in %q group: %w", tmxPath, PathLayerName, ErrPathTooShort)
	}
	log.Printf("Loaded %d enemy paths from %s", len(paths), tmxPath)
	return paths, nil
}

// RegisterTMX loads every path from a TMX map into the registry.
func (r *Registry) RegisterTMX(fsys fs.FS, tmxPath string) ([]string, error) {
	paths, err := LoadTMX(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(paths))
	for id, p := range paths {
		if err := r.Register(id, p); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
