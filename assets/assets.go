package assets

import (
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Layer and object group names read from Tiled maps.
const (
	SolidLayer       = "solid"
	PlayerSpawnGroup = "PlayerSpawn"
	DeadZoneGroup    = "DeadZones"
)

// Rect is an axis aligned rectangle in world space (y-up). X, Y is the
// bottom-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the middle of the rectangle.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

type Level struct {
	Name     string
	Width    int
	Height   int
	TileSize float64
	// Solids are merged horizontal runs of solid tiles.
	Solids []Rect
	// Decor are non-colliding tiles that are only drawn.
	Decor        []Rect
	PlayerSpawns []math.Vec2
	DeadZones    []Rect
}

// FlipY converts a Tiled (y-down) coordinate into world space (y-up).
func (l *Level) FlipY(y float64) float64 {
	return float64(l.Height) - y
}

// Spawn returns the first player spawn, or the middle of the level.
func (l *Level) Spawn() math.Vec2 {
	if len(l.PlayerSpawns) == 0 {
		return math.Vec2{X: float64(l.Width) / 2, Y: float64(l.Height) / 2}
	}
	return l.PlayerSpawns[0]
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LevelNames lists the embedded .tmx files in name order.
func (l *LevelLoader) LevelNames() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("reading levels directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Resolve maps a level file name to its embedded path, failing with the
// list of available levels when name is not one of them.
func (l *LevelLoader) Resolve(name string) (string, error) {
	names, err := l.LevelNames()
	if err != nil {
		return "", err
	}
	for _, n := range names {
		if n == name {
			return path.Join("levels", n), nil
		}
	}
	return "", fmt.Errorf("unknown level %q (available: %s)", name, strings.Join(names, ", "))
}

// LoadLevel parses an embedded Tiled map.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("loading level %s: %w", levelPath, err)
	}
	return fromMap(levelPath, levelMap), nil
}

func fromMap(levelPath string, levelMap *tiled.Map) Level {
	level := Level{
		Name:     levelPath,
		Width:    levelMap.Width * levelMap.TileWidth,
		Height:   levelMap.Height * levelMap.TileHeight,
		TileSize: float64(levelMap.TileWidth),
	}
	if name := levelMap.Properties.GetString("name"); name != "" {
		level.Name = name
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, math.Vec2{
					X: o.X,
					Y: level.FlipY(o.Y),
				})
			}
			// Left to right so the first spawn is stable.
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
			})
		case DeadZoneGroup:
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, Rect{
					X:      o.X,
					Y:      level.FlipY(o.Y + o.Height),
					Width:  o.Width,
					Height: o.Height,
				})
			}
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		solid := make([]bool, len(layer.Tiles))
		for i, tile := range layer.Tiles {
			solid[i] = tile != nil && !tile.IsNil()
		}
		level.Solids = mergeRuns(solid, levelMap.Width, levelMap.Height, tileW, tileH)
		break
	}

	return level
}

// mergeRuns joins horizontally adjacent solid cells of a row-major grid into
// one rectangle each, converting rows to world space.
func mergeRuns(solid []bool, cols, rows int, tileW, tileH float64) []Rect {
	var out []Rect
	height := float64(rows) * tileH
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; {
			if !solid[y*cols+x] {
				x++
				continue
			}
			start := x
			for x < cols && solid[y*cols+x] {
				x++
			}
			out = append(out, Rect{
				X:      float64(start) * tileW,
				Y:      height - float64(y+1)*tileH,
				Width:  float64(x-start) * tileW,
				Height: tileH,
			})
		}
	}
	return out
}

// GridLevel builds a level without a map file: a cols by rows grid of
// decorative tiles with a solid floor and side walls.
func GridLevel(cols, rows int, tileSize float64) Level {
	level := Level{
		Name:     "grid",
		Width:    int(float64(cols) * tileSize),
		Height:   int(float64(rows) * tileSize),
		TileSize: tileSize,
	}

	solid := make([]bool, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if y == rows-1 || x == 0 || x == cols-1 {
				solid[y*cols+x] = true
				continue
			}
			level.Decor = append(level.Decor, Rect{
				X:      float64(x) * tileSize,
				Y:      float64(rows-1-y) * tileSize,
				Width:  tileSize,
				Height: tileSize,
			})
		}
	}
	level.Solids = mergeRuns(solid, cols, rows, tileSize, tileSize)
	level.PlayerSpawns = []math.Vec2{{X: float64(cols) * tileSize / 4, Y: tileSize * 3}}
	return level
}
