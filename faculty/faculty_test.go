package faculty

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type pages map[string]string

func (p pages) Document(ctx context.Context, url string) (*goquery.Document, error) {
	page, ok := p[url]
	if !ok {
		return nil, fmt.Errorf("fetching %v: unexpected status 404 Not Found", url)
	}
	return goquery.NewDocumentFromReader(strings.NewReader(page))
}

func document(t testing.TB, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

const artsSciencesPage = `<table><tbody>
<tr>
<td><div class="card">
<div class="fname"><h3><a href="/grace">Grace
    Hopper</a></h3></div>
Professor; Department Head
<a href="/grace">Profile</a>
<a href="mailto:gmh@drexel.edu">gmh@drexel.edu</a>
</div></td>
<td><ul><li>Mathematics</li><li>Computer Science</li></ul></td>
<td><p>Compilers, programming languages</p><p>Navy history</p></td>
</tr>
<tr>
<td><div class="card">
<div class="fname"><h3><a>Alan Turing</a></h3></div>
Assistant Teaching Professor
</div></td>
<td><ul></ul></td>
<td></td>
</tr>
</tbody></table>`

func TestParseArtsSciences(t *testing.T) {
	expected := []catalog.Faculty{
		{
			Name:       "Grace Hopper",
			Titles:     []string{"Professor", "Department Head"},
			Email:      "gmh@drexel.edu",
			Department: "Mathematics",
			Interests:  "Compilers, programming languages",
		},
		{
			Name:       "Alan Turing",
			Titles:     []string{"Assistant Teaching Professor"},
			Email:      catalog.Unknown,
			Department: catalog.Unknown,
			Interests:  catalog.Unknown,
		},
	}
	if diff := cmp.Diff(expected, ParseArtsSciences(document(t, artsSciencesPage))); diff != "" {
		t.Fatal(diff)
	}
}

func engineeringSection(name, title string, contacts ...string) string {
	var card strings.Builder
	for _, contact := range contacts {
		fmt.Fprintf(&card, `<li><a href="#">%v</a></li>`, contact)
	}
	return `<section class="directory-result is-visible">` +
		`<div class="directory-result__name"> ` + name + ` </div>` +
		`<div class="directory-result__title">` + title + `</div>` +
		`<ul class="directory-result__contact-card">` + card.String() + `</ul>` +
		`</section>`
}

func TestParseEngineeringPage(t *testing.T) {
	page := engineeringSection("Ada Lovelace", "Professor", "al@drexel.edu", "215.895.0000") +
		engineeringSection("Charles Babbage", "Associate Professor", "cb@drexel.edu") +
		`<section class="directory-result"><div class="directory-result__name">Hidden</div></section>`

	expected := []catalog.Faculty{
		{Name: "Ada Lovelace", Title: "Professor", Email: "al@drexel.edu", Phone: "215-895-0000"},
		{Name: "Charles Babbage", Title: "Associate Professor", Email: "cb@drexel.edu", Phone: catalog.Unknown},
	}
	if diff := cmp.Diff(expected, ParseEngineeringPage(document(t, page))); diff != "" {
		t.Fatal(diff)
	}
}

func TestEngineeringPageURL(t *testing.T) {
	url, err := EngineeringPageURL("https://drexel.edu/engineering/about/faculty-staff/?q&sortBy=relevance&sortOrder=asc", 3)
	require.NoError(t, err)
	require.Equal(t, "https://drexel.edu/engineering/about/faculty-staff/?page=3&q=&sortBy=relevance&sortOrder=asc", url)

	_, err = EngineeringPageURL("://bad", 1)
	require.Error(t, err)
}

func TestScrapeEngineeringKeepsPageOrder(t *testing.T) {
	fetcher := pages{
		"https://example.edu/staff?page=1": engineeringSection("A", "Professor", "a@drexel.edu") +
			engineeringSection("B", "Professor", "b@drexel.edu"),
		"https://example.edu/staff?page=3": engineeringSection("C", "Professor", "c@drexel.edu"),
		"https://example.edu/staff?page=4": engineeringSection("D", "Professor", "d@drexel.edu"),
	}
	scraper := Scraper{Fetcher: fetcher, EngineeringURL: "https://example.edu/staff", EngineeringPages: 4, Concurrency: 3}

	faculty, err := scraper.ScrapeEngineering(context.Background())
	require.NoError(t, err)

	var names []string
	for _, member := range faculty {
		names = append(names, member.Name)
	}
	require.Equal(t, []string{"A", "B", "C", "D"}, names)
}

func TestScrape(t *testing.T) {
	fetcher := pages{
		"https://example.edu/coas":         artsSciencesPage,
		"https://example.edu/staff?page=1": engineeringSection("Ada Lovelace", "Professor", "al@drexel.edu"),
	}
	scraper := Scraper{
		Fetcher:          fetcher,
		ArtsSciencesURL:  "https://example.edu/coas",
		EngineeringURL:   "https://example.edu/staff",
		EngineeringPages: 1,
	}

	doc := catalog.New()
	doc.College("College of Arts and Sciences")
	doc.College("College of Engineering")
	require.NoError(t, scraper.Scrape(context.Background(), doc))

	require.Len(t, doc.Colleges, 2)
	require.Len(t, doc.Colleges[0].Faculty, 2)
	require.Len(t, doc.Colleges[1].Faculty, 1)
	require.Equal(t, "Ada Lovelace", doc.Colleges[1].Faculty[0].Name)
}

func TestScrapeContinuesPastFailedDirectory(t *testing.T) {
	fetcher := pages{
		"https://example.edu/staff?page=1": engineeringSection("Ada Lovelace", "Professor", "al@drexel.edu"),
	}
	scraper := Scraper{
		Fetcher:          fetcher,
		ArtsSciencesURL:  "https://example.edu/coas",
		EngineeringURL:   "https://example.edu/staff",
		EngineeringPages: 1,
	}

	doc := catalog.New()
	err := scraper.Scrape(context.Background(), doc)
	require.ErrorContains(t, err, "arts and sciences directory")

	college, found := doc.FindCollege(EngineeringCollege)
	require.True(t, found)
	require.Len(t, college.Faculty, 1)
}
