// Package config provides game configuration management for the Ayhuna
// chitti server.
//
// The config package handles:
//   - Loading card rulesets from JSON files
//   - Ruleset validation and verification
//   - Default ruleset management
//   - Ruleset discovery and listing
//
// Configuration Format:
//
// Rulesets are stored as JSON files in the configs directory. Each
// ruleset defines:
//   - The deck of card symbols available for dealing
//   - The hand size a player must collect to win
//   - The delay before a finished room is removed
//
// Available Configurations:
//
// The package ships with two rulesets:
//   - classic: eight card symbols, four of a kind wins
//   - quick: a smaller deck with a shorter cleanup delay
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific ruleset
//	gameConfig, err := manager.LoadConfig("quick")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default ruleset
//	defaultConfig := manager.GetDefault()
//
//	// List available rulesets
//	configs, err := manager.ListConfigs()
package config
