package commands

import (
	"aoewatch/lib/configutil"
	"aoewatch/lib/scrapers/aoecompanion"
	"aoewatch/lib/serviceutil"
	"aoewatch/services/watcher"
)

type Config struct {
	StateFile        string           `json:"state_file"`
	JournalDb        string           `json:"journal_db"`
	CompanionBaseUrl string           `json:"companion_base_url"`
	Players          []watcher.Player `json:"players"`
}

func loadConfig() Config {
	config, err := configutil.ReadConfig[Config](*configPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.StateFile == "" {
		config.StateFile = "mostrecentmatch.json"
	}
	if config.CompanionBaseUrl == "" {
		config.CompanionBaseUrl = aoecompanion.DefaultBaseUrl
	}
	return config
}
