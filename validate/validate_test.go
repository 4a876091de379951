package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	return tmpfile.Name()
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Config",
		"description": "Test ruleset",
		"cards": ["1", "2", "3", "4", "5", "6"],
		"win_hand_size": 4,
		"cleanup_delay_seconds": 10
	}`

	path := writeTempConfig(t, validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Invalid JSON") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Failed to read file") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_EmptyDeck(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"cards": [],
		"win_hand_size": 4,
		"cleanup_delay_seconds": 10
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to empty deck")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Deck is empty") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Deck is empty' error")
	}
}

func TestValidateConfig_DuplicateCards(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"cards": ["1", "2", "1"],
		"win_hand_size": 4,
		"cleanup_delay_seconds": 10
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to duplicate cards")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Duplicate card symbol") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Duplicate card symbol' error")
	}
}

func TestValidateConfig_BlankCard(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"cards": ["1", "  ", "3"],
		"win_hand_size": 4,
		"cleanup_delay_seconds": 10
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to blank card")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Blank card symbol") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Blank card symbol' error")
	}
}

func TestValidateConfig_InvalidRuleParameters(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"cards": ["1", "2", "3"],
		"win_hand_size": 0,
		"cleanup_delay_seconds": -5
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to invalid rule parameters")
	}

	foundHandSize := false
	foundDelay := false
	for _, err := range result.Errors {
		if contains(err, "win_hand_size must be positive") {
			foundHandSize = true
		}
		if contains(err, "cleanup_delay_seconds must not be negative") {
			foundDelay = true
		}
	}
	if !foundHandSize {
		t.Error("Expected 'win_hand_size must be positive' error")
	}
	if !foundDelay {
		t.Error("Expected 'cleanup_delay_seconds must not be negative' error")
	}
}

func TestValidateConfig_MissingRequiredFields(t *testing.T) {
	config := `{
		"cards": ["1", "2", "3"],
		"win_hand_size": 4,
		"cleanup_delay_seconds": 10
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to missing fields")
	}

	foundName := false
	foundDescription := false
	for _, err := range result.Errors {
		if contains(err, "Missing required field: name") {
			foundName = true
		}
		if contains(err, "Missing required field: description") {
			foundDescription = true
		}
	}
	if !foundName {
		t.Error("Expected 'Missing required field: name' error")
	}
	if !foundDescription {
		t.Error("Expected 'Missing required field: description' error")
	}
}

func TestValidatePlayability_InstantWin(t *testing.T) {
	config := &Config{
		Name:                "Test",
		Description:         "Test",
		Cards:               []string{"1", "2"},
		WinHandSize:         1,
		CleanupDelaySeconds: 10,
	}

	result := validatePlayability(config)
	if !result.Valid {
		t.Errorf("Playability warnings should not invalidate the config: %v", result.Errors)
	}

	found := false
	for _, msg := range result.Errors {
		if contains(msg, "first deal ends the game") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected a warning for win_hand_size of 1")
	}
}

func TestValidatePlayability_SingleSymbolDeck(t *testing.T) {
	config := &Config{
		Name:                "Test",
		Description:         "Test",
		Cards:               []string{"1"},
		WinHandSize:         4,
		CleanupDelaySeconds: 10,
	}

	result := validatePlayability(config)
	if !result.Valid {
		t.Errorf("Playability warnings should not invalidate the config: %v", result.Errors)
	}

	found := false
	for _, msg := range result.Errors {
		if contains(msg, "single-symbol deck") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected a warning for a single-symbol deck")
	}
}

// Helper function to check if a string contains a substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
