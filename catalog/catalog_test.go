package catalog

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/NicholasIapalucci/drexel-api/requisites"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustParse(t testing.TB, text string) requisites.List {
	list, err := requisites.ParsePrerequisites(text)
	if err != nil {
		t.Fatal(err)
	}
	return list
}

func testDocument(t testing.TB) *Document {
	doc := New()
	doc.AddCourse("Computing & Informatics", Course{
		CodeName: "CS-171", ProperName: "Computer Programming I", Credits: 3, MajorName: "Computer Science",
		Prerequisites: requisites.List{},
	})
	doc.AddCourse("Computing & Informatics", Course{
		CodeName: "CS-172", ProperName: "Computer Programming II", Credits: 3, MajorName: "Computer Science",
		Prerequisites: mustParse(t, "CS 171 [Min Grade: C-]"),
	})
	doc.AddCourse("Arts and Sciences", Course{
		CodeName: "MATH-121", ProperName: "Calculus I", Credits: 4, MajorName: "Mathematics",
		Prerequisites: requisites.List{},
	})
	doc.AddCourse("Computing & Informatics", Course{
		CodeName: "CS-260", ProperName: "Data Structures", Credits: 4, MajorName: "Computer Science",
		Prerequisites: mustParse(t, "CS 172 and MATH 121 and (CS 265 or CS 270)"),
	})
	doc.AddCourse("Computing & Informatics", Course{
		CodeName: "CS-265", ProperName: "Advanced Programming Tools", Credits: 3, MajorName: "Computer Science",
		Prerequisites: mustParse(t, "CS 172"),
	})
	doc.AddCourse("Computing & Informatics", Course{
		CodeName: "SE-181", ProperName: "Intro to Software Engineering", Credits: 3, MajorName: "Software Engineering",
		Prerequisites: mustParse(t, "Department consent"),
	})
	return doc
}

func TestAddCourseGroupsByCollegeAndMajor(t *testing.T) {
	doc := testDocument(t)

	require.Len(t, doc.Colleges, 2)
	require.Equal(t, "Computing & Informatics", doc.Colleges[0].Name)
	require.Equal(t, "Arts and Sciences", doc.Colleges[1].Name)

	cci := doc.Colleges[0]
	require.Len(t, cci.Majors, 2)
	require.Equal(t, "Computer Science", cci.Majors[0].Name)
	require.Equal(t, "Software Engineering", cci.Majors[1].Name)

	var codes []string
	for _, course := range cci.Majors[0].Courses {
		codes = append(codes, course.CodeName)
	}
	require.Equal(t, []string{"CS-171", "CS-172", "CS-260", "CS-265"}, codes)
}

func TestAttachFaculty(t *testing.T) {
	doc := New()
	doc.College("College of Engineering")
	doc.College("College of Arts and Sciences")

	faculty := []Faculty{{Name: "Ada Lovelace", Title: "Professor", Email: "ada@drexel.edu", Phone: Unknown}}

	testCases := []struct {
		directory string
		college   string
		colleges  int
	}{
		{directory: "College of Engineering", college: "College of Engineering", colleges: 2},
		{directory: "college of  engineering ", college: "College of Engineering", colleges: 2},
		{directory: "College of Arts and Science", college: "College of Arts and Sciences", colleges: 2},
		{directory: "Westphal College of Media Arts & Design", college: "Westphal College of Media Arts & Design", colleges: 3},
	}

	for _, test := range testCases {
		college := doc.AttachFaculty(test.directory, faculty)
		require.Equal(t, test.college, college.Name, "directory %q", test.directory)
		require.Equal(t, faculty, college.Faculty)
		require.Len(t, doc.Colleges, test.colleges)
	}
}

func TestQueries(t *testing.T) {
	doc := testDocument(t)

	course, found := doc.CourseWith("CS-265")
	require.True(t, found)
	require.Equal(t, "Advanced Programming Tools", course.ProperName)

	_, found = doc.CourseWith("CS-999")
	require.False(t, found)

	major, college, found := doc.MajorWith("Mathematics")
	require.True(t, found)
	require.Equal(t, "Arts and Sciences", college.Name)
	require.Len(t, major.Courses, 1)

	fourCredit := doc.CoursesWith(func(_ *College, _ *Major, course Course) bool {
		return course.Credits == 4
	})
	require.Len(t, fourCredit, 2)

	cs172, _ := doc.CourseWith("CS-172")
	cs171, _ := doc.CourseWith("CS-171")
	cs260, _ := doc.CourseWith("CS-260")
	cs265, _ := doc.CourseWith("CS-265")
	require.True(t, IsPrerequisiteOf(cs171, cs172))
	require.True(t, IsPrerequisiteOf(cs172, cs260))
	require.False(t, IsPrerequisiteOf(cs265, cs260), "one of several options is not required")
	require.False(t, IsPrerequisiteOf(cs172, cs171))
}

func TestAllPrerequisites(t *testing.T) {
	doc := testDocument(t)

	var codes []string
	for _, course := range doc.AllPrerequisites("CS-260") {
		codes = append(codes, course.CodeName)
	}
	if diff := cmp.Diff([]string{"CS-172", "MATH-121", "CS-171"}, codes); diff != "" {
		t.Fatal(diff)
	}

	require.Empty(t, doc.AllPrerequisites("CS-171"))
	require.Nil(t, doc.AllPrerequisites("CS-999"))
}

func TestAllPrerequisitesStopsOnCycles(t *testing.T) {
	doc := New()
	doc.AddCourse("C", Course{CodeName: "A-1", MajorName: "M", Prerequisites: mustParse(t, "B-1")})
	doc.AddCourse("C", Course{CodeName: "B-1", MajorName: "M", Prerequisites: mustParse(t, "A-1")})

	prerequisites := doc.AllPrerequisites("A-1")
	require.Len(t, prerequisites, 1)
	require.Equal(t, "B-1", prerequisites[0].CodeName)
}

func TestStats(t *testing.T) {
	doc := testDocument(t)
	doc.AttachFaculty("Arts and Sciences", []Faculty{{Name: "A"}, {Name: "B"}})
	doc.Organizations = append(doc.Organizations, Organization{Name: "Chess Club"})

	require.Equal(t, Stats{
		Colleges:              2,
		Majors:                3,
		Courses:               6,
		Faculty:               2,
		Organizations:         1,
		UnparsedPrerequisites: 1,
	}, doc.Stats())
}

func TestEncode(t *testing.T) {
	doc := New()
	doc.AddCourse("Computing & Informatics", Course{
		CodeName: "CS-172", ProperName: "Computer Programming II", Credits: 3, MajorName: "Computer Science",
		Prerequisites: mustParse(t, "CS 171 [Min Grade: C-]"),
	})

	var buffer bytes.Buffer
	require.NoError(t, Encode(&buffer, doc))

	expected := `{
    "colleges": [
        {
            "name": "Computing & Informatics",
            "majors": [
                {
                    "name": "Computer Science",
                    "courses": [
                        {
                            "codeName": "CS-172",
                            "properName": "Computer Programming II",
                            "credits": 3,
                            "majorName": "Computer Science",
                            "prerequisites": [
                                {
                                    "codeName": "CS-171",
                                    "minimum grade": "C-"
                                }
                            ]
                        }
                    ]
                }
            ]
        }
    ],
    "studentOrganizations": []
}
`
	require.Equal(t, expected, buffer.String())
}

func TestEncodeDoesNotEscapePrerequisites(t *testing.T) {
	doc := New()
	doc.AddCourse("Computing & Informatics", Course{
		CodeName: "CS-480", MajorName: "Computer Science",
		Prerequisites: mustParse(t, "CS 171 & CS 172"),
	})

	var buffer bytes.Buffer
	require.NoError(t, Encode(&buffer, doc))
	require.Contains(t, buffer.String(), `"& CS-172"`)
	require.NotContains(t, buffer.String(), `\u0026`)
}

func TestWriteReadFile(t *testing.T) {
	doc := testDocument(t)
	doc.AttachFaculty("Arts and Sciences", []Faculty{{
		Name: "Grace Hopper", Titles: []string{"Professor", "Department Head"},
		Email: "grace@drexel.edu", Department: "Mathematics", Interests: Unknown,
	}})
	doc.Organizations = append(doc.Organizations, Organization{Name: "Chess Club", Description: "We play chess."})

	path := filepath.Join(t.TempDir(), "drexel.json")
	require.NoError(t, WriteFile(path, doc))

	read, err := ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, read); diff != "" {
		t.Fatal(diff)
	}
}
