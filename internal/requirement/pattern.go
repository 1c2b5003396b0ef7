package requirement

import "strings"

// codeLen is the fixed length of a course code: four department letters
// followed by four digits.
const codeLen = 8

// Pattern is a fixed-length course-code template over {A-Z, 0-9, *} where *
// matches any single character. Shorter inputs are padded with trailing stars,
// so "BIOL" stands for every BIOL course.
type Pattern string

// NewPattern pads s with trailing '*' up to the course-code length.
func NewPattern(s string) Pattern {
	if len(s) < codeLen {
		s += strings.Repeat("*", codeLen-len(s))
	}
	return Pattern(s)
}

// Matches reports whether code fits the template position-wise. Codes of a
// different length never match.
func (p Pattern) Matches(code string) bool {
	if len(code) != len(p) {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] != '*' && p[i] != code[i] {
			return false
		}
	}
	return true
}

// String renders the pattern with its trailing wildcard padding removed, the
// way it is written in requirement text ("BIOL****" -> "BIOL").
func (p Pattern) String() string {
	return strings.TrimRight(string(p), "*")
}
