package courses

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher loads and parses a page.
type Fetcher interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
}

type MajorLink struct {
	Name string
	URL  string
}

// ParseIndex lists the majors linked from the course descriptions index.
// Major links read like "Computer Science (CS)".
func ParseIndex(document *goquery.Document, baseURL string) []MajorLink {
	var majors []MajorLink
	document.Find("a").Each(func(i int, anchor *goquery.Selection) {
		text := anchor.Text()
		open := strings.Index(text, "(")
		if open < 0 || !strings.Contains(text[open:], ")") {
			return
		}

		href, exists := anchor.Attr("href")
		if !exists || href == "" {
			return
		}

		majors = append(majors, MajorLink{
			Name: strings.TrimSpace(text[:open]),
			URL:  resolve(baseURL, href),
		})
	})
	return majors
}

func resolve(baseURL string, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}

func ScrapeIndex(ctx context.Context, fetcher Fetcher, baseURL string, indexPath string) ([]MajorLink, error) {
	document, err := fetcher.Document(ctx, resolve(baseURL, indexPath))
	if err != nil {
		return nil, err
	}
	return ParseIndex(document, baseURL), nil
}
