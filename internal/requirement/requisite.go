package requirement

import (
	"fmt"
	"strings"
)

// Requisite is one atomic condition a student must meet. The set of variants
// is closed; the evaluator dispatches exhaustively over it.
type Requisite interface {
	// Kind is a stable lowercase label used for observability and DOT output.
	Kind() string
	// String renders the requisite back in its canonical surface form.
	String() string
}

type Course struct {
	Code string
}

func (c Course) Kind() string   { return "course" }
func (c Course) String() string { return c.Code }

type Department struct {
	Code string
}

func (d Department) Kind() string   { return "department" }
func (d Department) String() string { return d.Code }

type Program struct {
	Code string
}

func (p Program) Kind() string   { return "program" }
func (p Program) String() string { return p.Code }

// CreditsWithPattern requires at least Credits credits summed over completed
// courses whose code matches any of Patterns.
type CreditsWithPattern struct {
	Patterns []Pattern
	Credits  int
}

func (c CreditsWithPattern) Kind() string { return "credits_with_pattern" }
func (c CreditsWithPattern) String() string {
	return fmt.Sprintf("%s{%d}", joinPatterns(c.Patterns), c.Credits)
}

// CoursesWithPattern requires at least Courses completed courses whose code
// matches any of Patterns. Counts courses, never sums credits.
type CoursesWithPattern struct {
	Patterns []Pattern
	Courses  int
}

func (c CoursesWithPattern) Kind() string { return "courses_with_pattern" }
func (c CoursesWithPattern) String() string {
	return fmt.Sprintf("%s{%dC}", joinPatterns(c.Patterns), c.Courses)
}

type EnglishLevel struct {
	Min int
}

func (e EnglishLevel) Kind() string   { return "english_level" }
func (e EnglishLevel) String() string { return fmt.Sprintf("INGLES{%d}", e.Min) }

type YearOfStudy struct {
	Year int
}

func (y YearOfStudy) Kind() string { return "year_of_study" }
func (y YearOfStudy) String() string {
	switch y.Year {
	case 1:
		return "1RO"
	case 2:
		return "2DO"
	case 3:
		return "3RO"
	default:
		return fmt.Sprintf("%dTO", y.Year)
	}
}

// CreditsUntilGraduation requires the student to be within Max credits of
// graduating.
type CreditsUntilGraduation struct {
	Max int
}

func (c CreditsUntilGraduation) Kind() string   { return "credits_until_graduation" }
func (c CreditsUntilGraduation) String() string { return fmt.Sprintf("FALTAN{%d}", c.Max) }

type GraduationStatus struct {
	Graduate bool
}

func (g GraduationStatus) Kind() string { return "graduation_status" }
func (g GraduationStatus) String() string {
	if g.Graduate {
		return "GRADUADO"
	}
	return "SUBGRADUADO"
}

type Exam struct {
	Name string
}

func (e Exam) Kind() string   { return "exam" }
func (e Exam) String() string { return "EXAMEN_" + e.Name }

type DirectorApproval struct{}

func (DirectorApproval) Kind() string   { return "director_approval" }
func (DirectorApproval) String() string { return "DIR" }

func joinPatterns(patterns []Pattern) string {
	parts := make([]string, 0, len(patterns))
	for _, p := range patterns {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ",")
}
