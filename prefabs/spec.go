package prefabs

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec tunes movement, the canvas and the loop timings.
type PlayerSpec struct {
	Name             string        `yaml:"name"`
	Speed            float64       `yaml:"speed"`
	StartScene       string        `yaml:"start_scene"`
	StartSpawnPX     float64       `yaml:"start_spawn_px"`
	CanvasWidth      float64       `yaml:"canvas_width"`
	CanvasHeight     float64       `yaml:"canvas_height"`
	EdgeMargin       float64       `yaml:"edge_margin"`
	MaxFrame         time.Duration `yaml:"max_frame"`
	InteractCooldown time.Duration `yaml:"interact_cooldown"`
	NoticeDuration   time.Duration `yaml:"notice_duration"`
	Sprite           SpriteSpec    `yaml:"sprite"`
}

type SpriteSpec struct {
	Idle         string  `yaml:"idle"`
	Walk         string  `yaml:"walk"`
	HeightFactor float64 `yaml:"height_factor"`
	GroundOffset float64 `yaml:"ground_offset"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ShopsSpec holds the budget and every shop's stock and dialog.
type ShopsSpec struct {
	StartingMoney int        `yaml:"starting_money"`
	Shops         []ShopSpec `yaml:"shops"`
}

type ShopSpec struct {
	Name   string            `yaml:"name"`
	Items  []ItemSpec        `yaml:"items"`
	Dialog map[string]string `yaml:"dialog"`
}

type ItemSpec struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
}

func LoadShopsSpec() (*ShopsSpec, error) {
	spec, err := LoadSpec[ShopsSpec]("shops.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type GoalsSpec struct {
	Goals []GoalSpec `yaml:"goals"`
}

type GoalSpec struct {
	ID    string   `yaml:"id"`
	Label string   `yaml:"label"`
	Wants []string `yaml:"wants"`
	Nice  []string `yaml:"nice"`
}

func LoadGoalsSpec() (*GoalsSpec, error) {
	spec, err := LoadSpec[GoalsSpec]("goals.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EndingsSpec is the ordered verdict rule list. The first rule whose When
// expression holds decides the ending.
type EndingsSpec struct {
	Rules []RuleSpec `yaml:"rules"`
}

type RuleSpec struct {
	Name     string `yaml:"name"`
	When     string `yaml:"when"`
	Verdict  string `yaml:"verdict"`
	Portrait string `yaml:"portrait"`
	Note     string `yaml:"note"`
}

func LoadEndingsSpec() (*EndingsSpec, error) {
	spec, err := LoadSpec[EndingsSpec]("endings.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
