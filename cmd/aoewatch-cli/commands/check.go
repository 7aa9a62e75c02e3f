package commands

import (
	"os"

	"aoewatch/lib/scrapers/aoecompanion"
	"aoewatch/lib/statestore"
	"aoewatch/services/watcher"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetches and diffs player statuses without persisting or posting (dry run).",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()

		service := watcher.NewService(watcher.Options{
			Players: config.Players,
			Source:  aoecompanion.NewClient(config.CompanionBaseUrl),
			Store:   statestore.NewJsonFile(config.StateFile),
		})
		result := service.Check(cmd.Context())

		changed := map[string]string{}
		for _, change := range result.Changes {
			changed[change.Player] = "yes"
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Player", "Status", "Would post"})
		for _, player := range config.Players {
			t.AppendRow(table.Row{
				player.Name,
				result.Statuses[player.Name],
				changed[player.Name],
			})
		}
		t.Render()
	},
}
