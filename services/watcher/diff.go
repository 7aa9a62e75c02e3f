package watcher

// Change is a player status that diverged from the previous run and
// should be announced.
type Change struct {
	Player string
	Status string
	// empty when the player had no prior recorded status
	Previous string
}

// DetectChanges compares freshly computed statuses against the prior
// snapshot and returns the reportable ones in roster order. A player
// with no prior status is always reportable; identical status text
// across different players is deliberately not deduplicated.
func DetectChanges(previous, current map[string]string, order []string) []Change {
	var changes []Change
	for _, name := range order {
		status, ok := current[name]
		if !ok {
			continue
		}
		prior, known := previous[name]
		if known && prior == status {
			continue
		}
		changes = append(changes, Change{
			Player:   name,
			Status:   status,
			Previous: prior,
		})
	}
	return changes
}
