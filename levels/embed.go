package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultTolerance is the normalized distance within which a door counts as
// nearby when the level file does not set one.
const DefaultTolerance = 0.06

// DoorKind selects what happens when the player enters a door.
type DoorKind string

const (
	DoorShop   DoorKind = "shop"
	DoorStudio DoorKind = "studio"
	DoorBonus  DoorKind = "bonus"
)

// Side is the canvas edge an exit sits on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Scene is one street as authored in a level file.
type Scene struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Doors      []Door `json:"doors"`
	Exits      []Exit `json:"exits,omitempty"`
}

// Door is an enterable location along the street. PX is normalized to the
// canvas width.
type Door struct {
	PX        float64  `json:"px"`
	Name      string   `json:"name"`
	Tolerance float64  `json:"tol,omitempty"`
	Interior  string   `json:"interior,omitempty"`
	Kind      DoorKind `json:"kind,omitempty"`
}

// Exit links a canvas edge to another scene. SpawnPX is optional; without it
// the player keeps their pixel position.
type Exit struct {
	Side    Side     `json:"side"`
	To      string   `json:"to"`
	SpawnPX *float64 `json:"spawn_px,omitempty"`
}

// Tol returns the door tolerance, falling back to DefaultTolerance.
func (d Door) Tol() float64 {
	if d.Tolerance <= 0 {
		return DefaultTolerance
	}
	return d.Tolerance
}

// EffectiveKind returns the door kind, treating an empty kind as a shop.
func (d Door) EffectiveKind() DoorKind {
	if d.Kind == "" {
		return DoorShop
	}
	return d.Kind
}

// Clone returns a deep copy so door edits never leak into shared tables.
func (s *Scene) Clone() *Scene {
	if s == nil {
		return nil
	}
	out := *s
	out.Doors = append([]Door(nil), s.Doors...)
	out.Exits = make([]Exit, len(s.Exits))
	for i, ex := range s.Exits {
		out.Exits[i] = ex
		if ex.SpawnPX != nil {
			v := *ex.SpawnPX
			out.Exits[i].SpawnPX = &v
		}
	}
	return &out
}

// LoadLevelFromFS reads a single scene by file name (".json" optional).
func LoadLevelFromFS(name string) (*Scene, error) {
	return loadLevel(LevelsFS, name)
}

// LoadAll reads every embedded scene keyed by id.
func LoadAll() (map[string]*Scene, error) {
	return LoadAllFrom(LevelsFS)
}

// LoadAllFrom reads every *.json scene in the root of fsys keyed by id.
func LoadAllFrom(fsys fs.FS) (map[string]*Scene, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	sort.Strings(names)

	scenes := make(map[string]*Scene, len(names))
	for _, name := range names {
		sc, err := loadLevel(fsys, name)
		if err != nil {
			return nil, err
		}
		if _, dup := scenes[sc.ID]; dup {
			return nil, fmt.Errorf("levels: duplicate scene id %q in %s", sc.ID, name)
		}
		scenes[sc.ID] = sc
	}
	return scenes, nil
}

// Marshal renders a scene back into the level file format.
func Marshal(sc *Scene) ([]byte, error) {
	if sc == nil {
		return nil, fmt.Errorf("levels: marshal nil scene")
	}
	return json.MarshalIndent(sc, "", "  ")
}

func loadLevel(fsys fs.FS, name string) (*Scene, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if sc.ID == "" {
		sc.ID = strings.TrimSuffix(path.Base(name), ".json")
	}
	for _, d := range sc.Doors {
		if d.PX < 0 || d.PX > 1 {
			return nil, fmt.Errorf("levels: %s: door %q px %.3f out of range", name, d.Name, d.PX)
		}
		switch d.EffectiveKind() {
		case DoorShop, DoorStudio, DoorBonus:
		default:
			return nil, fmt.Errorf("levels: %s: door %q has unknown kind %q", name, d.Name, d.Kind)
		}
	}
	for _, ex := range sc.Exits {
		if ex.Side != SideLeft && ex.Side != SideRight {
			return nil, fmt.Errorf("levels: %s: exit to %q has unknown side %q", name, ex.To, ex.Side)
		}
	}
	return &sc, nil
}
