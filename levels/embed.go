package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Tile values in Level.Tiles.
const (
	TileEmpty = 0
	TileSolid = 1
	TileSpike = 2
	TileGoal  = 3
)

// EntityStart marks where the hero spawns. X and Y are the bottom centre of
// the hero's sprite.
const EntityStart = "start"

const (
	DefaultTileSize = 32
	DefaultGravity  = 750
)

var ErrInvalidLevel = errors.New("levels: invalid level")

type Level struct {
	Name     string   `json:"-"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	TileSize int      `json:"tile_size,omitempty"`
	Gravity  float64  `json:"gravity,omitempty"`
	Tiles    []int    `json:"tiles"`
	Entities []Entity `json:"entities,omitempty"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Load reads levels/<name>.json from disk if present, otherwise from the
// embedded copy.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(diskLevelPath(clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	return Parse(strings.TrimSuffix(clean, ".json"), data)
}

// Parse decodes and validates a level, filling in defaults.
func Parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	lvl.Name = name
	if lvl.TileSize == 0 {
		lvl.TileSize = DefaultTileSize
	}
	if lvl.Gravity == 0 {
		lvl.Gravity = DefaultGravity
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %s: size %dx%d", ErrInvalidLevel, l.Name, l.Width, l.Height)
	}
	if len(l.Tiles) != l.Width*l.Height {
		return fmt.Errorf("%w: %s: %d tiles for a %dx%d grid", ErrInvalidLevel, l.Name, len(l.Tiles), l.Width, l.Height)
	}
	for i, v := range l.Tiles {
		if v < TileEmpty || v > TileGoal {
			return fmt.Errorf("%w: %s: tile %d has value %d", ErrInvalidLevel, l.Name, i, v)
		}
	}
	if _, _, ok := l.Spawn(); !ok {
		return fmt.Errorf("%w: %s: no %q entity", ErrInvalidLevel, l.Name, EntityStart)
	}
	return nil
}

// Spawn returns the first start entity's position.
func (l *Level) Spawn() (x, y float64, ok bool) {
	for _, e := range l.Entities {
		if e.Type == EntityStart {
			return float64(e.X), float64(e.Y), true
		}
	}
	return 0, 0, false
}

// Tile returns the tile at grid cell (x, y); cells outside the grid are empty.
func (l *Level) Tile(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return TileEmpty
	}
	return l.Tiles[y*l.Width+x]
}

// PixelSize is the level's extent in world units.
func (l *Level) PixelSize() (w, h float64) {
	return float64(l.Width * l.TileSize), float64(l.Height * l.TileSize)
}

// IsLevelFile reports whether path names a level file.
func IsLevelFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// NameOf turns a path such as levels/level-1.json into level-1.
func NameOf(path string) string {
	base := filepath.Base(filepath.ToSlash(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
