package catalog

// CourseWith returns the first course with the given code name.
func (d *Document) CourseWith(codeName string) (Course, bool) {
	for _, college := range d.Colleges {
		for _, major := range college.Majors {
			for _, course := range major.Courses {
				if course.CodeName == codeName {
					return course, true
				}
			}
		}
	}
	return Course{}, false
}

// CoursesWith returns every course accepted by match, in document order.
func (d *Document) CoursesWith(match func(college *College, major *Major, course Course) bool) []Course {
	var courses []Course
	for _, college := range d.Colleges {
		for _, major := range college.Majors {
			for _, course := range major.Courses {
				if match(college, major, course) {
					courses = append(courses, course)
				}
			}
		}
	}
	return courses
}

// MajorWith returns the first major with the given name and its college.
func (d *Document) MajorWith(name string) (*Major, *College, bool) {
	for _, college := range d.Colleges {
		for _, major := range college.Majors {
			if major.Name == name {
				return major, college, true
			}
		}
	}
	return nil, nil, false
}

func (d *Document) OrganizationWith(name string) (Organization, bool) {
	for _, organization := range d.Organizations {
		if organization.Name == name {
			return organization, true
		}
	}
	return Organization{}, false
}

// DirectPrerequisites returns the catalog courses that are absolute
// requirements of course. Alternatives inside a "one of" are not included,
// neither are codes missing from the catalog.
func (d *Document) DirectPrerequisites(course Course) []Course {
	var prerequisites []Course
	for _, required := range course.Prerequisites.Required() {
		prerequisite, found := d.CourseWith(required.Code)
		if !found {
			continue
		}
		prerequisites = append(prerequisites, prerequisite)
	}
	return prerequisites
}

// AllPrerequisites walks DirectPrerequisites breadth first from the course
// with the given code. Each course is returned once, the start course never.
func (d *Document) AllPrerequisites(codeName string) []Course {
	start, found := d.CourseWith(codeName)
	if !found {
		return nil
	}

	var all []Course
	visited := map[string]bool{codeName: true}
	current := []Course{start}
	for len(current) > 0 {
		var next []Course
		for _, course := range current {
			for _, prerequisite := range d.DirectPrerequisites(course) {
				if visited[prerequisite.CodeName] {
					continue
				}
				visited[prerequisite.CodeName] = true
				all = append(all, prerequisite)
				next = append(next, prerequisite)
			}
		}
		current = next
	}
	return all
}

// IsPrerequisiteOf reports whether prerequisite is an absolute requirement of
// course. Being one option of a "one of" does not count.
func IsPrerequisiteOf(prerequisite, course Course) bool {
	for _, required := range course.Prerequisites.Required() {
		if required.Code == prerequisite.CodeName {
			return true
		}
	}
	return false
}
