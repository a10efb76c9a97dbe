package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size:   10,
			TickMS: 200,
		},
		Start: StartConfig{
			Snake:     [][2]int{{2, 2}},
			Food:      [2]int{5, 5},
			Direction: "right",
		},
		Rules: RulesConfig{
			PreventReversal: false,
			FoodAvoidsBody:  false,
		},
		Theme: ThemeConfig{
			Head:   "bright_green",
			Body:   "green",
			Food:   "red",
			Empty:  "gray",
			Border: "gray",
			Text:   "white",
			Alert:  "bright_red",
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `snake config`.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
