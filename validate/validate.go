// Command validate provides a small CLI that validates game ruleset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Deck contents: at least one symbol, no blanks, no duplicates
//   - Win hand size (positive) and cleanup delay (non-negative)
//   - Playability heuristics, such as instant-win hand sizes
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a game ruleset.
type Config struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Cards               []string `json:"cards"`
	WinHandSize         int      `json:"win_hand_size"`
	CleanupDelaySeconds int      `json:"cleanup_delay_seconds"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single ruleset JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}
	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: description")
	}

	// Validate deck
	if len(config.Cards) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Deck is empty: cards must list at least one chitti symbol")
	}

	seen := map[string]bool{}
	for i, card := range config.Cards {
		if strings.TrimSpace(card) == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Blank card symbol at cards[%d]", i))
			continue
		}
		if seen[card] {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Duplicate card symbol %q at cards[%d]", card, i))
		}
		seen[card] = true
	}

	// Validate rule parameters
	if config.WinHandSize <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("win_hand_size must be positive, got %d", config.WinHandSize))
	}

	if config.CleanupDelaySeconds < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("cleanup_delay_seconds must not be negative, got %d", config.CleanupDelaySeconds))
	}

	// Playability heuristics
	if result.Valid {
		playability := validatePlayability(&config)
		result.Errors = append(result.Errors, playability.Errors...)
		if !playability.Valid {
			result.Valid = false
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Deck: %d symbols", len(config.Cards)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Win hand size: %d", config.WinHandSize))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Cleanup delay: %ds", config.CleanupDelaySeconds))
	}

	return result
}

// validatePlayability flags rule combinations that produce degenerate
// games. These are warnings rather than hard schema violations, so the
// result stays valid; the messages surface in the report.
func validatePlayability(config *Config) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if config.WinHandSize == 1 {
		result.Errors = append(result.Errors, "⚠ win_hand_size of 1 means the first deal ends the game")
	}

	if len(config.Cards) == 1 {
		result.Errors = append(result.Errors, "⚠ a single-symbol deck makes every full hand a winning hand")
	}

	if config.CleanupDelaySeconds == 0 {
		result.Errors = append(result.Errors, "⚠ cleanup_delay_seconds of 0 removes the room the moment the game ends")
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
