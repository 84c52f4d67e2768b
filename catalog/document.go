package catalog

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

// minimum Jaro-Winkler similarity for a directory's college name to be taken
// as a catalog college
const collegeSimilarity = 0.9

func New() *Document {
	return &Document{
		Colleges:      []*College{},
		Organizations: []Organization{},
	}
}

// College returns the college with the given name, appending it first if the
// document does not have it yet.
func (d *Document) College(name string) *College {
	for _, college := range d.Colleges {
		if college.Name == name {
			return college
		}
	}
	college := &College{Name: name, Majors: []*Major{}}
	d.Colleges = append(d.Colleges, college)
	return college
}

// Major returns the major with the given name, appending it first if the
// college does not have it yet.
func (c *College) Major(name string) *Major {
	for _, major := range c.Majors {
		if major.Name == name {
			return major
		}
	}
	major := &Major{Name: name, Courses: []Course{}}
	c.Majors = append(c.Majors, major)
	return major
}

// AddCourse files a course under its college and course.MajorName.
func (d *Document) AddCourse(collegeName string, course Course) {
	major := d.College(collegeName).Major(course.MajorName)
	major.Courses = append(major.Courses, course)
}

var nameWhitespace = regexp.MustCompile(`\s+`)

func normalizeName(name string) string {
	return nameWhitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), " ")
}

// FindCollege looks a college up by exact name, then by the most similar name
// above collegeSimilarity.
func (d *Document) FindCollege(name string) (*College, bool) {
	for _, college := range d.Colleges {
		if college.Name == name {
			return college, true
		}
	}

	target := normalizeName(name)
	var best *College
	var bestSimilarity float64
	for _, college := range d.Colleges {
		similarity := matchr.JaroWinkler(target, normalizeName(college.Name), false)
		if similarity > bestSimilarity {
			best = college
			bestSimilarity = similarity
		}
	}
	if best == nil || bestSimilarity < collegeSimilarity {
		return nil, false
	}
	return best, true
}

// AttachFaculty sets the faculty of the named college, creating the college
// when the catalog did not list it.
func (d *Document) AttachFaculty(collegeName string, faculty []Faculty) *College {
	college, found := d.FindCollege(collegeName)
	if !found {
		slog.Warn("college not in catalog, adding it for its faculty", "college", collegeName)
		college = d.College(collegeName)
	} else if college.Name != collegeName {
		slog.Info("matched faculty directory to college", "directory", collegeName, "college", college.Name)
	}
	college.Faculty = faculty
	return college
}

type Stats struct {
	Colleges      int
	Majors        int
	Courses       int
	Faculty       int
	Organizations int
	// courses whose prerequisite text could not be tokenized
	UnparsedPrerequisites int
}

func (d *Document) Stats() Stats {
	stats := Stats{Colleges: len(d.Colleges), Organizations: len(d.Organizations)}
	for _, college := range d.Colleges {
		stats.Majors += len(college.Majors)
		stats.Faculty += len(college.Faculty)
		for _, major := range college.Majors {
			stats.Courses += len(major.Courses)
			for _, course := range major.Courses {
				if course.Prerequisites.IsFallback() {
					stats.UnparsedPrerequisites++
				}
			}
		}
	}
	return stats
}
