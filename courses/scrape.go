package courses

import (
	"context"
	"log/slog"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"golang.org/x/sync/errgroup"
)

type Scraper struct {
	Fetcher     Fetcher
	BaseURL     string
	IndexPath   string
	Concurrency int
}

func (s Scraper) scrapeMajor(ctx context.Context, major MajorLink) ([]Record, error) {
	document, err := s.Fetcher.Document(ctx, major.URL)
	if err != nil {
		return nil, err
	}
	records := ParseMajorPage(document, major.Name)
	slog.Info("scraped major", "major", major.Name, "courses", len(records))
	return records, nil
}

// Scrape adds every course of the catalog to the document. Majors whose page
// cannot be fetched are logged and left out; courses are added in index order.
func (s Scraper) Scrape(ctx context.Context, document *catalog.Document) error {
	majors, err := ScrapeIndex(ctx, s.Fetcher, s.BaseURL, s.IndexPath)
	if err != nil {
		return err
	}
	slog.Info("found majors", "count", len(majors))

	results := make([][]Record, len(majors))

	group, groupCtx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		group.SetLimit(s.Concurrency)
	}
	for i, major := range majors {
		i, major := i, major
		group.Go(func() error {
			records, err := s.scrapeMajor(groupCtx, major)
			if err != nil {
				slog.Error("unable to scrape major", "major", major.Name, "url", major.URL, "err", err)
				return nil
			}
			results[i] = records
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, records := range results {
		for _, record := range records {
			document.AddCourse(record.College, record.Course)
		}
	}
	return nil
}
