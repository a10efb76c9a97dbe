package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MinBoardSize is the smallest board the game accepts.
const MinBoardSize = 4

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered on top of the defaults, so partial files are fine.
// Only an explicit customPath may fail; discovered files that do not parse
// or validate are skipped.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

var directionNames = map[string]bool{"up": true, "down": true, "left": true, "right": true}

// NormalizeDirection puts a direction name in the form the game parses:
// trimmed and lower case.
func NormalizeDirection(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	size := c.Board.Size
	if size < MinBoardSize {
		errs = append(errs, fmt.Errorf("board.size must be at least %d, got %d", MinBoardSize, size))
	}
	if c.Board.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("board.tick_ms must be positive, got %d", c.Board.TickMS))
	}

	inBounds := func(p [2]int) bool {
		return p[0] >= 0 && p[0] < size && p[1] >= 0 && p[1] < size
	}

	if len(c.Start.Snake) == 0 {
		errs = append(errs, errors.New("start.snake must have at least one cell"))
	}
	seen := make(map[[2]int]bool, len(c.Start.Snake))
	for i, p := range c.Start.Snake {
		if !inBounds(p) {
			errs = append(errs, fmt.Errorf("start.snake[%d] %v is outside the board", i, p))
		}
		if seen[p] {
			errs = append(errs, fmt.Errorf("start.snake[%d] %v overlaps another segment", i, p))
		}
		seen[p] = true
	}
	if !inBounds(c.Start.Food) {
		errs = append(errs, fmt.Errorf("start.food %v is outside the board", c.Start.Food))
	}
	if seen[c.Start.Food] {
		errs = append(errs, fmt.Errorf("start.food %v is on the snake", c.Start.Food))
	}
	if !directionNames[NormalizeDirection(c.Start.Direction)] {
		errs = append(errs, fmt.Errorf("start.direction %q is not one of up, down, left, right", c.Start.Direction))
	}

	themeColors := map[string]string{
		"head":   c.Theme.Head,
		"body":   c.Theme.Body,
		"food":   c.Theme.Food,
		"empty":  c.Theme.Empty,
		"border": c.Theme.Border,
		"text":   c.Theme.Text,
		"alert":  c.Theme.Alert,
	}
	for field, name := range themeColors {
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("theme.%s: %w", field, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// TickInterval returns the configured tick period.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Board.TickMS) * time.Millisecond
}
