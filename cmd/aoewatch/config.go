package main

import (
	"aoewatch/services/watcher"
)

type Config struct {
	// path of the single-snapshot state file
	StateFile string `json:"state_file"`
	// path of the sqlite post journal; empty disables journaling
	JournalDb string `json:"journal_db"`
	// override for the aoe2companion API, mostly for testing
	CompanionBaseUrl string `json:"companion_base_url"`
	// override for the bluesky PDS
	BlueskyBaseUrl string `json:"bluesky_base_url"`
	Verbose        bool   `json:"verbose"`

	Players []watcher.Player `json:"players"`
}

// bluesky credentials come from the environment (or a .env file),
// never from config.json5
type Credentials struct {
	Identifier  string `env:"BSKY_USERNAME"`
	AppPassword string `env:"BSKY_APP_PASSWORD"`
}
