package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/NicholasIapalucci/drexel-api/config"
	"github.com/NicholasIapalucci/drexel-api/db"
	"github.com/NicholasIapalucci/drexel-api/requisites"
	"github.com/stretchr/testify/require"
)

func testDocument(t testing.TB) *catalog.Document {
	prerequisites, err := requisites.ParsePrerequisites("CS 171 [Min Grade: C-]")
	require.NoError(t, err)

	doc := catalog.New()
	doc.AddCourse("Computing & Informatics", catalog.Course{
		CodeName: "CS-171", ProperName: "Computer Programming I", Credits: 3, MajorName: "Computer Science",
		Prerequisites: requisites.List{},
	})
	doc.AddCourse("Computing & Informatics", catalog.Course{
		CodeName: "CS-172", ProperName: "Computer Programming II", Credits: 3, MajorName: "Computer Science",
		Prerequisites: prerequisites,
	})
	return doc
}

func TestRenderPrerequisites(t *testing.T) {
	doc := testDocument(t)

	var buffer bytes.Buffer
	require.NoError(t, renderPrerequisites(&buffer, doc, " cs 172"))
	out := buffer.String()
	require.True(t, strings.HasPrefix(out, "CS-172 Computer Programming II\n"))
	require.Contains(t, out, "Prerequisites: CS-171 [Min Grade: C-]\n")
	require.Contains(t, out, "Computer Science")

	buffer.Reset()
	require.NoError(t, renderPrerequisites(&buffer, doc, "CS-171"))
	require.Equal(t, "CS-171 Computer Programming I\nNo prerequisites.\n", buffer.String())

	require.ErrorContains(t, renderPrerequisites(&buffer, doc, "CS-999"), "no course CS-999")
}

func TestRenderTokens(t *testing.T) {
	var buffer bytes.Buffer
	renderTokens(&buffer, "CS 171 and permission of instructor")
	out := buffer.String()

	require.Contains(t, out, "CS-171")
	require.Contains(t, out, "course")
	require.Contains(t, strings.ToUpper(out), "UNTOKENIZED")
	require.Contains(t, strings.ToUpper(out), "PERMISSION OF INSTRUCTOR")
}

func TestRenderStats(t *testing.T) {
	doc := testDocument(t)
	doc.AddCourse("Computing & Informatics", catalog.Course{
		CodeName: "CS-480", MajorName: "Computer Science",
		Prerequisites: requisites.List{requisites.Raw("permission of instructor")},
	})

	var buffer bytes.Buffer
	renderStats(&buffer, doc.Stats())
	out := buffer.String()
	require.Contains(t, out, "Unparsed prerequisites")
	require.Contains(t, out, "Courses")
	require.Contains(t, out, "3")
}

func TestScrapersFollowConfig(t *testing.T) {
	t.Setenv("SCRAPE_CONCURRENCY", "3")
	loaded, err := config.Load(filepath.Join(t.TempDir(), "catalog.yaml"))
	require.NoError(t, err)

	client := newFetcher(loaded)

	courses := coursesScraper(loaded, client)
	require.Equal(t, "https://catalog.drexel.edu", courses.BaseURL)
	require.Equal(t, "/coursedescriptions/quarter/undergrad", courses.IndexPath)
	require.Equal(t, 3, courses.Concurrency)

	faculty := facultyScraper(loaded, client)
	require.Equal(t, 22, faculty.EngineeringPages)
	require.Equal(t, 3, faculty.Concurrency)
	require.Same(t, client, faculty.Fetcher)
}

func TestConnectWithoutDatabase(t *testing.T) {
	_, err := connect(context.Background(), &config.Config{})
	require.ErrorIs(t, err, errNoDatabase)
}

func TestWithDatabaseSkipsWorkWithoutConnection(t *testing.T) {
	called := false
	err := withDatabase(context.Background(), &config.Config{}, func(*db.Database) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, errNoDatabase)
	require.ErrorContains(t, err, "failed to connect to database")
	require.False(t, called)

	err = saveToDatabase(context.Background(), &config.Config{}, catalog.New())
	require.ErrorIs(t, err, errNoDatabase)
}
