package engine

import (
	"strings"
	"testing"
	"time"
)

func TestValidateGameConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		if err := ValidateGameConfig(createTestConfig()); err != nil {
			t.Errorf("Unexpected validation error: %v", err)
		}
	})

	t.Run("nil config", func(t *testing.T) {
		if err := ValidateGameConfig(nil); err == nil {
			t.Error("Expected error for nil config")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		config := createTestConfig()
		config.Name = ""
		if err := ValidateGameConfig(config); err == nil {
			t.Error("Expected error for missing name")
		}
	})

	t.Run("missing description", func(t *testing.T) {
		config := createTestConfig()
		config.Description = ""
		if err := ValidateGameConfig(config); err == nil {
			t.Error("Expected error for missing description")
		}
	})

	t.Run("non-positive win hand size", func(t *testing.T) {
		config := createTestConfig()
		config.WinHandSize = 0
		if err := ValidateGameConfig(config); err == nil {
			t.Error("Expected error for zero win_hand_size")
		}
	})

	t.Run("negative cleanup delay", func(t *testing.T) {
		config := createTestConfig()
		config.CleanupDelaySeconds = -1
		if err := ValidateGameConfig(config); err == nil {
			t.Error("Expected error for negative cleanup_delay_seconds")
		}
	})

	t.Run("empty card list", func(t *testing.T) {
		config := createTestConfig()
		config.Cards = nil
		if err := ValidateGameConfig(config); err == nil {
			t.Error("Expected error for empty card list")
		}
	})

	t.Run("duplicate card symbol", func(t *testing.T) {
		config := createTestConfig()
		config.Cards = []string{"1", "2", "1"}
		err := ValidateGameConfig(config)
		if err == nil {
			t.Fatal("Expected error for duplicate card symbol")
		}
		if !strings.Contains(err.Error(), "duplicate") {
			t.Errorf("Expected duplicate symbol error, got: %v", err)
		}
	})

	t.Run("empty card symbol", func(t *testing.T) {
		config := createTestConfig()
		config.Cards = []string{"1", ""}
		if err := ValidateGameConfig(config); err == nil {
			t.Error("Expected error for empty card symbol")
		}
	})
}

func TestDefaultGameConfig(t *testing.T) {
	config := DefaultGameConfig()

	if err := ValidateGameConfig(config); err != nil {
		t.Errorf("Default config must validate, got: %v", err)
	}
	if config.WinHandSize != DefaultWinHandSize {
		t.Errorf("Expected win hand size %d, got %d", DefaultWinHandSize, config.WinHandSize)
	}
	if config.CleanupDelaySeconds != DefaultCleanupDelaySeconds {
		t.Errorf("Expected cleanup delay %ds, got %ds", DefaultCleanupDelaySeconds, config.CleanupDelaySeconds)
	}
}

func TestCleanupDelay(t *testing.T) {
	config := createTestConfig()
	config.CleanupDelaySeconds = 10

	if d := config.CleanupDelay(); d != 10*time.Second {
		t.Errorf("Expected 10s cleanup delay, got %v", d)
	}
}
