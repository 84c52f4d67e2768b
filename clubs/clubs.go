// Package clubs reads student organizations from a saved copy of the
// organization directory. The live page only renders its first few cards, so
// the full list has to be saved from a browser.
package clubs

import (
	"fmt"
	"log/slog"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/NicholasIapalucci/drexel-api/fetch"
	"github.com/NicholasIapalucci/drexel-api/htmlutil"
	"github.com/PuerkitoBio/goquery"
)

const cardSelector = "div.MuiPaper-root.MuiCard-root.MuiPaper-elevation3.MuiPaper-rounded"

func first(sel *goquery.Selection, selector string) *goquery.Selection {
	return sel.Find(selector).First()
}

func Parse(document *goquery.Document) []catalog.Organization {
	organizations := []catalog.Organization{}
	document.Find(cardSelector).Each(func(i int, card *goquery.Selection) {
		content := first(first(first(first(card, "div"), "span"), "div"), "div")

		name := htmlutil.Text(first(content, "div:not([alt])"))
		if name == "" {
			slog.Warn("unable to determine organization name", "card", i)
			return
		}
		link, _ := card.Parent().Attr("href")

		organizations = append(organizations, catalog.Organization{
			Name:        name,
			Description: htmlutil.Text(first(content, "p")),
			Link:        link,
		})
	})
	return organizations
}

func Load(path string) ([]catalog.Organization, error) {
	document, err := fetch.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load organizations page: %w", err)
	}
	return Parse(document), nil
}
