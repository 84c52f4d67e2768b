package commands

import (
	"io"
	"log/slog"
	"time"

	"github.com/NicholasIapalucci/drexel-api/db"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var runsLimit int

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "How many of the latest runs to list.")
	rootCmd.AddCommand(migrateCmd, runsCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Creates the database tables.",
	Run: func(cmd *cobra.Command, args []string) {
		err := withDatabase(cmd.Context(), cfg, func(database *db.Database) error {
			return database.Migrate(cmd.Context())
		})
		if err != nil {
			fatal("failed to migrate database", err)
		}
		slog.Info("migrated database")
	},
}

func renderRuns(w io.Writer, runs []db.Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Run", "Started", "Colleges", "Majors", "Courses", "Unparsed", "Faculty", "Organizations"})
	for _, run := range runs {
		stats := run.Stats
		t.AppendRow(table.Row{
			run.Id, run.StartedAt.Local().Format(time.DateTime),
			stats.Colleges, stats.Majors, stats.Courses, stats.UnparsedPrerequisites, stats.Faculty, stats.Organizations,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

var runsCmd = &cobra.Command{
	Use:   "runs [--limit 10]",
	Short: "Lists the latest generations saved to the database.",
	Run: func(cmd *cobra.Command, args []string) {
		var runs []db.Run
		err := withDatabase(cmd.Context(), cfg, func(database *db.Database) (err error) {
			runs, err = database.ListRuns(cmd.Context(), runsLimit)
			return err
		})
		if err != nil {
			fatal("failed to list runs", err)
		}
		renderRuns(cmd.OutOrStdout(), runs)
	},
}
