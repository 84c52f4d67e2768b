package faculty

import (
	"strings"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/NicholasIapalucci/drexel-api/htmlutil"
	"github.com/PuerkitoBio/goquery"
)

const ArtsSciencesCollege = "College of Arts and Sciences"

func orUnknown(s string) string {
	if s == "" {
		return catalog.Unknown
	}
	return s
}

// titles reads the first line after the name in a directory card, e.g.
// "Professor; Department Head".
func titles(card *goquery.Selection) []string {
	text := card.Contents().Not("div.fname").Text()
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		var result []string
		for _, title := range strings.Split(line, ";") {
			result = append(result, strings.TrimSpace(title))
		}
		return result
	}
	return nil
}

// ParseArtsSciences reads the Arts and Sciences directory table. Each row has
// a card with the name, titles and email, then the department, then research
// interests.
func ParseArtsSciences(document *goquery.Document) []catalog.Faculty {
	var faculty []catalog.Faculty
	document.Find("div.fname").Each(func(i int, name *goquery.Selection) {
		card := name.Parent()
		cells := card.Parent().Parent().ChildrenFiltered("td")

		member := catalog.Faculty{
			Name:       htmlutil.Text(name.Find("h3 a")),
			Titles:     titles(card),
			Email:      orUnknown(strings.TrimSpace(card.Find(`a[href^="mailto:"]`).First().Text())),
			Department: orUnknown(htmlutil.Text(cells.Eq(1).Find("li"))),
			Interests:  orUnknown(htmlutil.Text(cells.Eq(2).Find("p"))),
		}
		if member.Name == "" {
			return
		}
		faculty = append(faculty, member)
	})
	return faculty
}
