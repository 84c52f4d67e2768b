package faculty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

type Fetcher interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
}

type Scraper struct {
	Fetcher          Fetcher
	ArtsSciencesURL  string
	EngineeringURL   string
	EngineeringPages int
	Concurrency      int
}

func (s Scraper) ScrapeArtsSciences(ctx context.Context) ([]catalog.Faculty, error) {
	document, err := s.Fetcher.Document(ctx, s.ArtsSciencesURL)
	if err != nil {
		return nil, err
	}
	return ParseArtsSciences(document), nil
}

// ScrapeEngineering reads every page of the Engineering directory. Pages that
// fail are logged and left out.
func (s Scraper) ScrapeEngineering(ctx context.Context) ([]catalog.Faculty, error) {
	pages := make([][]catalog.Faculty, s.EngineeringPages)

	group, groupCtx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		group.SetLimit(s.Concurrency)
	}
	for i := range pages {
		i := i
		pageURL, err := EngineeringPageURL(s.EngineeringURL, i+1)
		if err != nil {
			return nil, fmt.Errorf("invalid engineering directory url: %w", err)
		}

		group.Go(func() error {
			document, err := s.Fetcher.Document(groupCtx, pageURL)
			if err != nil {
				slog.Error("unable to scrape directory page", "url", pageURL, "err", err)
				return nil
			}
			pages[i] = ParseEngineeringPage(document)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var faculty []catalog.Faculty
	for _, page := range pages {
		faculty = append(faculty, page...)
	}
	return faculty, nil
}

// Scrape attaches both directories to their colleges. A directory that cannot
// be read does not stop the other one.
func (s Scraper) Scrape(ctx context.Context, document *catalog.Document) error {
	var errs []error

	artsSciences, err := s.ScrapeArtsSciences(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("arts and sciences directory: %w", err))
	} else {
		document.AttachFaculty(ArtsSciencesCollege, artsSciences)
		slog.Info("scraped faculty", "college", ArtsSciencesCollege, "count", len(artsSciences))
	}

	engineering, err := s.ScrapeEngineering(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("engineering directory: %w", err))
	} else {
		document.AttachFaculty(EngineeringCollege, engineering)
		slog.Info("scraped faculty", "college", EngineeringCollege, "count", len(engineering))
	}

	return errors.Join(errs...)
}
