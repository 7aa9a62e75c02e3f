package commands

import (
	"os"
	"sort"

	"aoewatch/lib/statestore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stateCmd)
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Prints the persisted statuses from the previous run.",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()

		statuses := statestore.NewJsonFile(config.StateFile).Load()
		names := make([]string, 0, len(statuses))
		for name := range statuses {
			names = append(names, name)
		}
		sort.Strings(names)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Player", "Status"})
		for _, name := range names {
			t.AppendRow(table.Row{name, statuses[name]})
		}
		t.Render()
	},
}
