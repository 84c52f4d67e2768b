package catalog

import "github.com/NicholasIapalucci/drexel-api/requisites"

// Document is the root of drexel.json.
type Document struct {
	Colleges      []*College     `json:"colleges"`
	Organizations []Organization `json:"studentOrganizations"`
}

type College struct {
	Name    string    `json:"name"`
	Majors  []*Major  `json:"majors"`
	Faculty []Faculty `json:"faculty,omitempty"`
}

type Major struct {
	Name    string   `json:"name"`
	Courses []Course `json:"courses"`
}

type Course struct {
	// e.g. "CS-171", always letters, a hyphen, then digits
	CodeName      string          `json:"codeName"`
	ProperName    string          `json:"properName"`
	Credits       int             `json:"credits"`
	MajorName     string          `json:"majorName"`
	Prerequisites requisites.List `json:"prerequisites"`
}

// Faculty holds whatever a college's directory publishes. Arts and Sciences
// lists several titles and research interests, Engineering lists a single
// title and a phone number.
type Faculty struct {
	Name       string   `json:"name"`
	Titles     []string `json:"titles,omitempty"`
	Title      string   `json:"title,omitempty"`
	Email      string   `json:"email"`
	Department string   `json:"department,omitempty"`
	Interests  string   `json:"interests,omitempty"`
	Phone      string   `json:"phone,omitempty"`
}

type Organization struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Unknown fills directory fields that a page leaves empty.
const Unknown = "unknown"
