package commands

import (
	"database/sql"
	"os"
	"time"

	"aoewatch/lib/serviceutil"
	"aoewatch/lib/timezone"
	watcherdb "aoewatch/services/watcher/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	_ "modernc.org/sqlite"
)

var postsLimit *int64

func init() {
	postsLimit = postsCmd.Flags().Int64("limit", 50, "Maximum number of journal entries to show.")
	rootCmd.AddCommand(postsCmd)
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Lists the most recent entries in the post journal.",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()
		if config.JournalDb == "" {
			serviceutil.Fatal("no journal_db configured", os.ErrNotExist)
		}

		journal, err := sql.Open("sqlite", config.JournalDb)
		if err != nil {
			serviceutil.Fatal("failed to open post journal", err)
		}
		defer journal.Close()

		posts, err := watcherdb.New(journal).GetPosts(cmd.Context(), *postsLimit)
		if err != nil {
			serviceutil.Fatal("failed to query post journal", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Time", "Player", "Status", "Uri"})
		for _, post := range posts {
			t.AppendRow(table.Row{
				time.Unix(post.Time, 0).In(timezone.Location).Format(time.DateTime),
				post.Player,
				post.Status,
				post.Uri,
			})
		}
		t.Render()
	},
}
