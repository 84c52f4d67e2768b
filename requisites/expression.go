package requisites

import "strings"

// AnyGrade is the minimum grade of a course requirement without a
// "[Min Grade: ...]" qualifier.
const AnyGrade = "Any"

// Expression is one node of a prerequisite tree: Course, AllOf, OneOf or Raw.
type Expression interface {
	requisite() // restricts Expression to the types below

	String() string
}

// Course is a single required course.
type Course struct {
	Code         string
	MinimumGrade string
}

// AllOf requires every member. It never directly contains another AllOf.
type AllOf []Expression

// OneOf requires any single member. It never directly contains another OneOf.
type OneOf []Expression

// Raw is prerequisite text that could not be tokenized, kept verbatim.
type Raw string

func (Course) requisite() {}
func (AllOf) requisite()  {}
func (OneOf) requisite()  {}
func (Raw) requisite()    {}

func (c Course) String() string {
	if c.MinimumGrade == "" || c.MinimumGrade == AnyGrade {
		return c.Code
	}
	return c.Code + " [Min Grade: " + c.MinimumGrade + "]"
}

func (a AllOf) String() string {
	return join([]Expression(a), " and ", true)
}

func (o OneOf) String() string {
	return join([]Expression(o), " or ", true)
}

func (r Raw) String() string {
	return string(r)
}

func join(expressions []Expression, separator string, group bool) string {
	parts := make([]string, len(expressions))
	for i, expression := range expressions {
		parts[i] = expression.String()
		if group && isComposite(expression) {
			parts[i] = "(" + parts[i] + ")"
		}
	}
	return strings.Join(parts, separator)
}

func isComposite(expression Expression) bool {
	switch expression.(type) {
	case AllOf, OneOf:
		return true
	}
	return false
}

// conjoin folds right into an and-chain with left, merging either side that
// already is an AllOf. The result never shares a backing array with its
// operands.
func conjoin(left, right Expression) AllOf {
	all := AllOf{}
	for _, operand := range []Expression{left, right} {
		if members, ok := operand.(AllOf); ok {
			all = append(all, members...)
			continue
		}
		all = append(all, operand)
	}
	return all
}

// disjoin is conjoin for or-chains.
func disjoin(left, right Expression) OneOf {
	one := OneOf{}
	for _, operand := range []Expression{left, right} {
		if members, ok := operand.(OneOf); ok {
			one = append(one, members...)
			continue
		}
		one = append(one, operand)
	}
	return one
}

// List is the top-level prerequisite list of a course. Every entry is
// required.
type List []Expression

func (l List) String() string {
	return join([]Expression(l), " ", len(l) > 1)
}

// IsFallback reports whether the list only holds untokenizable text.
func (l List) IsFallback() bool {
	if len(l) != 1 {
		return false
	}
	_, ok := l[0].(Raw)
	return ok
}

// Courses returns every course mentioned anywhere in the list, in order of
// appearance.
func (l List) Courses() []Course {
	var courses []Course
	var walk func(Expression)
	walk = func(expression Expression) {
		switch e := expression.(type) {
		case Course:
			courses = append(courses, e)
		case AllOf:
			for _, member := range e {
				walk(member)
			}
		case OneOf:
			for _, member := range e {
				walk(member)
			}
		}
	}
	for _, expression := range l {
		walk(expression)
	}
	return courses
}

// Required returns the courses that must all be taken: top-level courses and
// the courses of top-level conjunctions. Courses inside a OneOf are choices
// and are left out.
func (l List) Required() []Course {
	var required []Course
	for _, expression := range l {
		switch e := expression.(type) {
		case Course:
			required = append(required, e)
		case AllOf:
			for _, member := range e {
				if course, ok := member.(Course); ok {
					required = append(required, course)
				}
			}
		}
	}
	return required
}
