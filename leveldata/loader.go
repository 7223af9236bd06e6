package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/shapeshift/shape"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// DefaultRadius is used for transformers without a radius property.
const DefaultRadius = 40.0

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// the embedded assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Path:   tmxPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSpawn:
			for _, o := range og.Objects {
				level.Spawn = math.Vec2{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case GroupBlocks:
			for _, o := range og.Objects {
				level.Blocks = append(level.Blocks, Block{
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					Travel: o.Properties.GetFloat("travel"),
				})
			}
		case GroupTransformers:
			for _, o := range og.Objects {
				t, err := parseTransformer(o)
				if err != nil {
					return nil, fmt.Errorf("%s: transformer %d: %w", tmxPath, o.ID, err)
				}
				level.Transformers = append(level.Transformers, t)
			}
		case GroupCaves:
			for _, o := range og.Objects {
				target, err := shape.Parse(o.Properties.GetString("cells"))
				if err != nil {
					return nil, fmt.Errorf("%s: cave %d: %w", tmxPath, o.ID, err)
				}
				level.Caves = append(level.Caves, Cave{
					Position: math.Vec2{X: o.X, Y: o.Y},
					Target:   target,
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: no %s object", tmxPath, GroupSpawn)
	}
	if len(level.Caves) == 0 {
		return nil, fmt.Errorf("%s: no %s objects", tmxPath, GroupCaves)
	}

	return level, nil
}

func parseTransformer(o *tiled.Object) (Transformer, error) {
	kind, err := shape.ParseKind(o.Properties.GetString("kind"))
	if err != nil {
		return Transformer{}, err
	}

	radius := o.Properties.GetFloat("radius")
	if radius <= 0 {
		radius = DefaultRadius
	}

	return Transformer{
		Position: math.Vec2{X: o.X, Y: o.Y},
		Radius:   radius,
		Kind:     kind,
		Spit: math.Vec2{
			X: o.Properties.GetFloat("spitX"),
			Y: o.Properties.GetFloat("spitY"),
		},
	}, nil
}

// LoadAll loads every .tmx file in dir, ordered by file name.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
