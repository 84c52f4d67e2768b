package faculty

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/NicholasIapalucci/drexel-api/htmlutil"
	"github.com/PuerkitoBio/goquery"
)

const EngineeringCollege = "College of Engineering"

// EngineeringPageURL sets the 1-based page parameter of the directory search.
func EngineeringPageURL(directory string, page int) (string, error) {
	parsed, err := url.Parse(directory)
	if err != nil {
		return "", err
	}
	query := parsed.Query()
	query.Set("page", strconv.Itoa(page))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func ParseEngineeringPage(document *goquery.Document) []catalog.Faculty {
	var faculty []catalog.Faculty
	document.Find("section.directory-result.is-visible").Each(func(i int, section *goquery.Selection) {
		contacts := section.Find("ul.directory-result__contact-card a")

		phone := catalog.Unknown
		if contacts.Length() > 1 {
			phone = strings.ReplaceAll(htmlutil.Text(contacts.Eq(1)), ".", "-")
		}

		faculty = append(faculty, catalog.Faculty{
			Name:  htmlutil.Text(section.Find("div.directory-result__name")),
			Title: htmlutil.Text(section.Find("div.directory-result__title")),
			Email: orUnknown(htmlutil.Text(contacts.First())),
			Phone: orUnknown(phone),
		})
	})
	return faculty
}
