// Package config provides YAML-based game configuration loading for the
// snake game.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Start StartConfig `yaml:"start"`
	Rules RulesConfig `yaml:"rules"`
	Theme ThemeConfig `yaml:"theme"`
}

// BoardConfig defines the playing field and its clock.
type BoardConfig struct {
	Size   int `yaml:"size"`    // Cells per side of the square board
	TickMS int `yaml:"tick_ms"` // Milliseconds between simulation ticks
}

// StartConfig defines the state a new game starts from.
type StartConfig struct {
	Snake     [][2]int `yaml:"snake"`     // Body cells, head first, as [x, y]
	Food      [2]int   `yaml:"food"`      // Initial food cell as [x, y]
	Direction string   `yaml:"direction"` // up, down, left or right
}

// RulesConfig holds opt-in deviations from the classic rules.
// Both are off by default.
type RulesConfig struct {
	PreventReversal bool `yaml:"prevent_reversal"` // Ignore keys that reverse into the body
	FoodAvoidsBody  bool `yaml:"food_avoids_body"` // Spawn food only on free cells
}

// ThemeConfig names the colors used to draw the board.
type ThemeConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Empty  string `yaml:"empty"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
	Alert  string `yaml:"alert"`
}
