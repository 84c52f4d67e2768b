package commands

import (
	"log/slog"
	"time"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/NicholasIapalucci/drexel-api/clubs"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(allCmd, coursesCmd, facultyCmd, clubsCmd)
}

var allCmd = &cobra.Command{
	Use:   "all [--out drexel.json]",
	Short: "Scrapes courses, faculty and student organizations, then writes the document and saves it to the database if one is configured.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		client := newFetcher(cfg)
		doc := catalog.New()

		t1 := time.Now()
		if err := coursesScraper(cfg, client).Scrape(ctx, doc); err != nil {
			fatal("failed to scrape courses", err)
		}
		if err := facultyScraper(cfg, client).Scrape(ctx, doc); err != nil {
			slog.Error("failed to scrape faculty", "err", err)
		}
		organizations, err := clubs.Load(cfg.Clubs.PagePath)
		if err != nil {
			slog.Error("failed to read student organizations", "err", err)
		} else {
			doc.Organizations = organizations
		}
		t2 := time.Now()
		slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds())

		finish(cmd.OutOrStdout(), cfg, doc)

		if cfg.Database.URL == "" {
			return
		}
		if err := saveToDatabase(ctx, cfg, doc); err != nil {
			fatal("failed to save document to database", err)
		}
	},
}

var coursesCmd = &cobra.Command{
	Use:   "courses [--out courses.json]",
	Short: "Scrapes only the course catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		doc := catalog.New()
		if err := coursesScraper(cfg, newFetcher(cfg)).Scrape(cmd.Context(), doc); err != nil {
			fatal("failed to scrape courses", err)
		}
		finish(cmd.OutOrStdout(), cfg, doc)
	},
}

var facultyCmd = &cobra.Command{
	Use:   "faculty [--out faculty.json]",
	Short: "Scrapes only the faculty directories.",
	Run: func(cmd *cobra.Command, args []string) {
		doc := catalog.New()
		if err := facultyScraper(cfg, newFetcher(cfg)).Scrape(cmd.Context(), doc); err != nil {
			fatal("failed to scrape faculty", err)
		}
		finish(cmd.OutOrStdout(), cfg, doc)
	},
}

var clubsCmd = &cobra.Command{
	Use:   "clubs [--out clubs.json]",
	Short: "Reads only the saved student organizations page.",
	Run: func(cmd *cobra.Command, args []string) {
		organizations, err := clubs.Load(cfg.Clubs.PagePath)
		if err != nil {
			fatal("failed to read student organizations", err)
		}
		doc := catalog.New()
		doc.Organizations = organizations
		finish(cmd.OutOrStdout(), cfg, doc)
	},
}
