// Package config provides runtime configuration for Gem Duel.
//
// Settings come from environment variables, optionally seeded from a .env
// file in the working directory:
//
//	GEMDUEL_SEED        board placement seed (0 picks one at startup)
//	GEMDUEL_DEBUG       enable debug logging
//	GEMDUEL_INPUT       auto, key or line
//	GEMDUEL_LOG_FORMAT  text or json
//
// Command-line flags override these values. Board size, gem and obstacle
// counts and the turn limit are fixed rules and are not configurable.
package config
