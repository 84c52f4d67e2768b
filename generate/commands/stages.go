package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/NicholasIapalucci/drexel-api/config"
	"github.com/NicholasIapalucci/drexel-api/courses"
	"github.com/NicholasIapalucci/drexel-api/db"
	"github.com/NicholasIapalucci/drexel-api/faculty"
	"github.com/NicholasIapalucci/drexel-api/fetch"
	"github.com/jedib0t/go-pretty/v6/table"
)

var errNoDatabase = errors.New("no database configured, set database.url or DATABASE_CONNECTION_STRING")

func newFetcher(cfg *config.Config) *fetch.Client {
	return fetch.NewClient(fetch.Options{
		Timeout:   cfg.Timeout(),
		Retries:   cfg.Scrape.Retries,
		UserAgent: cfg.Scrape.UserAgent,
	})
}

func coursesScraper(cfg *config.Config, fetcher courses.Fetcher) courses.Scraper {
	return courses.Scraper{
		Fetcher:     fetcher,
		BaseURL:     cfg.Catalog.BaseURL,
		IndexPath:   cfg.Catalog.IndexPath,
		Concurrency: cfg.Scrape.Concurrency,
	}
}

func facultyScraper(cfg *config.Config, fetcher faculty.Fetcher) faculty.Scraper {
	return faculty.Scraper{
		Fetcher:          fetcher,
		ArtsSciencesURL:  cfg.Faculty.ArtsSciencesURL,
		EngineeringURL:   cfg.Faculty.EngineeringURL,
		EngineeringPages: cfg.Faculty.EngineeringPages,
		Concurrency:      cfg.Scrape.Concurrency,
	}
}

func connect(ctx context.Context, cfg *config.Config) (*db.Database, error) {
	if cfg.Database.URL == "" {
		return nil, errNoDatabase
	}
	return db.Connect(ctx, cfg.Database.URL)
}

// withDatabase runs fn on a connection that is closed once fn returns, so
// callers may exit on the error it gives back.
func withDatabase(ctx context.Context, cfg *config.Config, fn func(*db.Database) error) error {
	database, err := connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()
	return fn(database)
}

func saveToDatabase(ctx context.Context, cfg *config.Config, doc *catalog.Document) error {
	return withDatabase(ctx, cfg, func(database *db.Database) error {
		if err := database.Migrate(ctx); err != nil {
			return err
		}
		_, err := database.SaveDocument(ctx, doc)
		return err
	})
}

func renderStats(w io.Writer, stats catalog.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Records", "Count"})
	t.AppendRows([]table.Row{
		{"Colleges", stats.Colleges},
		{"Majors", stats.Majors},
		{"Courses", stats.Courses},
		{"Unparsed prerequisites", stats.UnparsedPrerequisites},
		{"Faculty", stats.Faculty},
		{"Student organizations", stats.Organizations},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// finish writes the document and prints what it holds.
func finish(w io.Writer, cfg *config.Config, doc *catalog.Document) {
	if err := catalog.WriteFile(cfg.Output, doc); err != nil {
		fatal("failed to write document", err)
	}
	slog.Info("wrote document", "path", cfg.Output)
	renderStats(w, doc.Stats())
}
