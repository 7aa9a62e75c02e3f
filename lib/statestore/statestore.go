// Package statestore persists the player-name → status-string mapping
// between runs. The bot only ever keeps one prior snapshot, so the
// store is a flat string map that is read once at startup and fully
// rewritten at the end of a run.
package statestore

// Store is the single-snapshot key-value store backing change
// detection. Load is fail-soft: implementations return an empty map
// for missing or unreadable state so a first run and a corrupted
// store behave the same way.
type Store interface {
	Load() map[string]string
	Save(statuses map[string]string) error
}
