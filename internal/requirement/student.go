package requirement

// CompletedCourse is one approved course on a student's transcript.
type CompletedCourse struct {
	Code       string `json:"code" yaml:"code"`
	Credits    int    `json:"credits" yaml:"credits"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
	Program    string `json:"program,omitempty" yaml:"program,omitempty"`
}

// StudentRecord is the academic snapshot a requirement is evaluated against.
// It is owned by the caller and read-only to the evaluator; Approvals holds
// the director approvals granted to the student for the course whose
// requirement is being checked.
type StudentRecord struct {
	Courses          []CompletedCourse `json:"courses,omitempty" yaml:"courses,omitempty"`
	Year             int               `json:"year,omitempty" yaml:"year,omitempty"`
	EnglishLevel     int               `json:"english_level,omitempty" yaml:"english_level,omitempty"`
	CreditsRemaining int               `json:"credits_remaining,omitempty" yaml:"credits_remaining,omitempty"`
	Graduate         bool              `json:"graduate,omitempty" yaml:"graduate,omitempty"`
	Department       string            `json:"department,omitempty" yaml:"department,omitempty"`
	Program          string            `json:"program,omitempty" yaml:"program,omitempty"`
	Exams            []string          `json:"exams,omitempty" yaml:"exams,omitempty"`
	Approvals        []string          `json:"approvals,omitempty" yaml:"approvals,omitempty"`
}

func (s *StudentRecord) HasCourse(code string) bool {
	for _, c := range s.Courses {
		if c.Code == code {
			return true
		}
	}
	return false
}

// CreditsMatching sums the credits of completed courses whose code matches
// any of the patterns. A course is counted once even when several patterns
// match it.
func (s *StudentRecord) CreditsMatching(patterns []Pattern) int {
	total := 0
	for _, c := range s.Courses {
		if anyPatternMatches(patterns, c.Code) {
			total += c.Credits
		}
	}
	return total
}

// CoursesMatching counts completed courses whose code matches any of the
// patterns.
func (s *StudentRecord) CoursesMatching(patterns []Pattern) int {
	n := 0
	for _, c := range s.Courses {
		if anyPatternMatches(patterns, c.Code) {
			n++
		}
	}
	return n
}

func (s *StudentRecord) HasExam(name string) bool {
	for _, e := range s.Exams {
		if e == name {
			return true
		}
	}
	return false
}

func (s *StudentRecord) HasDirectorApproval() bool {
	return len(s.Approvals) > 0
}

// Clone deep-copies the record so service layers can hand the evaluator a
// snapshot the caller cannot race with.
func (s *StudentRecord) Clone() *StudentRecord {
	if s == nil {
		return &StudentRecord{}
	}
	out := *s
	out.Courses = append([]CompletedCourse(nil), s.Courses...)
	out.Exams = append([]string(nil), s.Exams...)
	out.Approvals = append([]string(nil), s.Approvals...)
	return &out
}

func anyPatternMatches(patterns []Pattern, code string) bool {
	for _, p := range patterns {
		if p.Matches(code) {
			return true
		}
	}
	return false
}
