package courses

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/NicholasIapalucci/drexel-api/htmlutil"
	"github.com/NicholasIapalucci/drexel-api/requisites"
	"github.com/PuerkitoBio/goquery"
)

// Record is one course block together with the college it names.
type Record struct {
	College string
	Course  catalog.Course
}

var nonWord = regexp.MustCompile(`\W`)

// FormatCode turns the first title span, e.g. "CS 171  ", into
// "CS-171".
func FormatCode(title string) string {
	runes := []rune(title)
	if len(runes) < 2 {
		return ""
	}
	return nonWord.ReplaceAllString(string(runes[:len(runes)-2]), "-")
}

// ParseCredits reads "3.0" or, for variable credit courses, the upper bound of
// "1.0-12.0".
func ParseCredits(text string) (int, error) {
	text = strings.TrimSpace(text)
	if _, upper, found := strings.Cut(text, "-"); found {
		text = strings.TrimSpace(upper)
	}
	credits, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to determine credits from %q: %w", text, err)
	}
	return int(credits), nil
}

// ParsePrerequisiteText never fails: text the parser rejects is kept verbatim.
func ParsePrerequisiteText(code string, text string) requisites.List {
	prerequisites, err := requisites.ParsePrerequisites(text)
	if err != nil {
		var syntaxErr *requisites.SyntaxError
		if errors.As(err, &syntaxErr) {
			slog.Warn("unable to parse prerequisites", "course", code, "text", text, "err", err)
		} else {
			slog.Error("unable to parse prerequisites", "course", code, "text", text, "err", err)
		}
		return requisites.List{requisites.Raw(text)}
	}
	return prerequisites
}

func ParseCourseBlock(block *goquery.Selection, majorName string) (Record, error) {
	titles := block.Find("span.cdspacing")
	if titles.Length() < 3 {
		return Record{}, fmt.Errorf("expected 3 title spans but found %d", titles.Length())
	}

	code := FormatCode(titles.Eq(0).Text())
	name := strings.TrimSpace(titles.Eq(1).Text())

	credits, err := ParseCredits(htmlutil.PreviousSiblingText(titles.Eq(2)))
	if err != nil {
		return Record{}, fmt.Errorf("%v: %w", code, err)
	}

	labels := block.Find("b")
	if labels.Length() == 0 {
		return Record{}, fmt.Errorf("%v: unable to determine college", code)
	}
	college := strings.TrimSpace(htmlutil.NextSiblingText(labels.First()))

	prerequisites := requisites.List{}
	// The last label is "Repeat Status" when a course lists no prerequisites.
	if labels.Length() > 1 {
		text := htmlutil.NextSiblingText(labels.Last())
		if !strings.Contains(text, "credit") {
			prerequisites = ParsePrerequisiteText(code, strings.TrimSpace(text))
		}
	}

	return Record{
		College: college,
		Course: catalog.Course{
			CodeName:      code,
			ProperName:    name,
			Credits:       credits,
			MajorName:     majorName,
			Prerequisites: prerequisites,
		},
	}, nil
}

// ParseMajorPage extracts every course block of a major's page. Blocks that
// cannot be read are logged and skipped.
func ParseMajorPage(document *goquery.Document, majorName string) []Record {
	var records []Record
	document.Find("div.courseblock").Each(func(i int, block *goquery.Selection) {
		record, err := ParseCourseBlock(block, majorName)
		if err != nil {
			slog.Warn("unable to read course block", "major", majorName, "index", i, "err", err)
			return
		}
		records = append(records, record)
	})
	return records
}
