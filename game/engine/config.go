package engine

import (
	"fmt"
	"time"
)

// GameConfig represents a game configuration loaded from JSON.
type GameConfig struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Cards               []string `json:"cards"`
	WinHandSize         int      `json:"win_hand_size"`
	CleanupDelaySeconds int      `json:"cleanup_delay_seconds"`
}

// CleanupDelay returns the post-win room retention window as a duration.
func (c *GameConfig) CleanupDelay() time.Duration {
	return time.Duration(c.CleanupDelaySeconds) * time.Second
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.WinHandSize <= 0 {
		return fmt.Errorf("config validation: win_hand_size must be positive, got %d", config.WinHandSize)
	}

	if config.CleanupDelaySeconds < 0 {
		return fmt.Errorf("config validation: cleanup_delay_seconds must not be negative, got %d", config.CleanupDelaySeconds)
	}

	if len(config.Cards) == 0 {
		return fmt.Errorf("config validation: cards must list at least one chitti symbol")
	}

	seen := make(map[string]bool, len(config.Cards))
	for i, card := range config.Cards {
		if card == "" {
			return fmt.Errorf("config validation: cards[%d] is empty", i)
		}
		if seen[card] {
			return fmt.Errorf("config validation: duplicate card symbol %q", card)
		}
		seen[card] = true
	}

	return nil
}

// DefaultGameConfig returns the built-in classic ruleset, used when no
// configuration file is available.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:                "classic",
		Description:         "Classic chitti rules: four identical chittis win",
		Cards:               []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		WinHandSize:         DefaultWinHandSize,
		CleanupDelaySeconds: DefaultCleanupDelaySeconds,
	}
}
