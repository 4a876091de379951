// Command analyze prints quick, human-readable heuristics about ruleset
// files in the project's configs directory. It summarizes deck composition
// and rule parameters, estimates how fast a game can end, and highlights
// settings that make rooms degenerate or hard to clean up.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AnalysisConfig is a light struct for reading ruleset files used by analysis.
type AnalysisConfig struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Cards               []string `json:"cards"`
	WinHandSize         int      `json:"win_hand_size"`
	CleanupDelaySeconds int      `json:"cleanup_delay_seconds"`
}

func main() {
	configs := []string{
		"classic.json",
		"quick.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Deck: %d symbols\n", len(config.Cards))
	fmt.Printf("Win Hand Size: %d\n", config.WinHandSize)
	fmt.Printf("Cleanup Delay: %ds\n", config.CleanupDelaySeconds)

	// Count duplicate symbols. Every symbol is dealt as fresh copies, so
	// duplicates in the deck list add nothing except repeated deal options.
	counts := map[string]int{}
	duplicates := 0
	for _, card := range config.Cards {
		counts[card]++
		if counts[card] == 2 {
			duplicates++
		}
	}
	if duplicates > 0 {
		fmt.Printf("⚠️  WARNING: %d symbols appear more than once in the deck\n", duplicates)
	}

	// The fastest natural win: the host deals the same symbol every round,
	// so a hand holds win_hand_size identical cards after that many deals.
	if config.WinHandSize > 0 {
		fmt.Printf("Fastest win: %d deals of one symbol\n", config.WinHandSize)
	}

	// Flag degenerate rule combinations.
	if config.WinHandSize == 1 {
		fmt.Printf("⚠️  WARNING: win_hand_size of 1 ends the game on the first deal\n")
	}
	if len(config.Cards) == 1 {
		fmt.Printf("⚠️  WARNING: single-symbol deck, every full hand is a winning hand\n")
	} else if len(config.Cards) < config.WinHandSize {
		fmt.Printf("Note: fewer symbols (%d) than the win hand size (%d), repeats come quickly\n",
			len(config.Cards), config.WinHandSize)
	} else {
		fmt.Printf("✅ Deck variety is sufficient for the win hand size\n")
	}

	// Cleanup delay sanity.
	switch {
	case config.CleanupDelaySeconds == 0:
		fmt.Printf("⚠️  WARNING: finished rooms are removed immediately, clients may miss the final state\n")
	case config.CleanupDelaySeconds > 300:
		fmt.Printf("⚠️  WARNING: finished rooms linger for %ds before cleanup\n", config.CleanupDelaySeconds)
	default:
		fmt.Printf("✅ Cleanup delay keeps finished rooms visible briefly\n")
	}
}
