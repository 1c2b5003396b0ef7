package requirement

import (
	"regexp"
	"strconv"
	"strings"
)

// Normalize uppercases a requirement string and folds the handful of spelling
// variants the source data is known to carry: accented combinator vowels
// (Ó -> O) and nothing else. Anything outside the documented vocabulary still
// fails tokenization; typos are reported, not repaired.
func Normalize(raw string) string {
	return accentFolder.Replace(strings.ToUpper(strings.TrimSpace(raw)))
}

var accentFolder = strings.NewReplacer(
	"Á", "A",
	"É", "E",
	"Í", "I",
	"Ó", "O",
	"Ú", "U",
	"Ü", "U",
)

var (
	examRe        = regexp.MustCompile(`^EXAMEN_([A-Z]+(?:_[A-Z]+)*)`)
	englishRe     = regexp.MustCompile(`^INGLES\{(\d+)\}`)
	faltanRe      = regexp.MustCompile(`^FALTAN\{(\d+)\}`)
	graduationRe  = regexp.MustCompile(`^(SUBGRADUADO|GRADUADO)`)
	directorRe    = regexp.MustCompile(`^(?:DIRECTOR|DIR\.|DIR)`)
	yearRe        = regexp.MustCompile(`^([1-5])(?:RO|ER|DO|TO)`)
	patternLeftRe = regexp.MustCompile(`^([A-Z][A-Z0-9*]{0,7}(?:,[A-Z][A-Z0-9*]{0,7})*)\{(\d+)(C?)\}`)
	braceLeftRe   = regexp.MustCompile(`^\{(\d+)(C?)\}([A-Z][A-Z0-9*]{0,7}(?:,[A-Z][A-Z0-9*]{0,7})*)`)
	courseRe      = regexp.MustCompile(`^[A-Z]{4}\d{4}`)
	departmentRe  = regexp.MustCompile(`^[A-Z]{4}`)
	programRe     = regexp.MustCompile(`^\d{4}`)
	andSymRe      = regexp.MustCompile(`^&&`)
	andWordRe     = regexp.MustCompile(`^[YE]`)
	orSymRe       = regexp.MustCompile(`^(?:\|\||/)`)
	orWordRe      = regexp.MustCompile(`^[OU]`)
	groupOpenRe   = regexp.MustCompile(`^[(\[]`)
	groupCloseRe  = regexp.MustCompile(`^[)\]]`)
)

// rule is one candidate shape of the requisite vocabulary. Rules are matched
// at the current position with the longest match winning; rule order only
// breaks ties, most specific first. Several shapes are textual prefixes of
// others (PSIC / PSIC3011 / PSIC{12}, INGLES{3} vs a pattern spelled INGLES),
// so first-match-by-declaration-order would be wrong.
type rule struct {
	re *regexp.Regexp
	// boundary demands that the matched text not be immediately followed by a
	// code character, so DIR never swallows the first letters of DIRE and a
	// department never matches inside a course code.
	boundary bool
	build    func(m []string, pos int) (Token, bool)
}

// rules in tie-break order: keyword shapes before the generic code shapes
// they overlap with.
var rules = []rule{
	{re: examRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		return atom(TokenExam, m[0], pos, Exam{Name: m[1]}), true
	}},
	{re: englishRe, build: func(m []string, pos int) (Token, bool) {
		n, ok := positiveInt(m[1])
		return atom(TokenEnglishLevel, m[0], pos, EnglishLevel{Min: n}), ok
	}},
	{re: faltanRe, build: func(m []string, pos int) (Token, bool) {
		n, ok := positiveInt(m[1])
		return atom(TokenCreditsUntilGraduation, m[0], pos, CreditsUntilGraduation{Max: n}), ok
	}},
	{re: graduationRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		return atom(TokenGraduationStatus, m[0], pos, GraduationStatus{Graduate: m[1] == "GRADUADO"}), true
	}},
	{re: directorRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		return atom(TokenDirectorApproval, m[0], pos, DirectorApproval{}), true
	}},
	{re: yearRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		n, ok := positiveInt(m[1])
		return atom(TokenYearOfStudy, m[0], pos, YearOfStudy{Year: n}), ok
	}},
	{re: patternLeftRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		return patternAtom(m[0], pos, m[1], m[2], m[3])
	}},
	{re: braceLeftRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		return patternAtom(m[0], pos, m[3], m[1], m[2])
	}},
	{re: courseRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		return atom(TokenCourse, m[0], pos, Course{Code: m[0]}), true
	}},
	{re: departmentRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		return atom(TokenDepartment, m[0], pos, Department{Code: m[0]}), true
	}},
	{re: programRe, boundary: true, build: func(m []string, pos int) (Token, bool) {
		return atom(TokenProgram, m[0], pos, Program{Code: m[0]}), true
	}},
	{re: andSymRe, build: opBuild(TokenAnd)},
	{re: andWordRe, boundary: true, build: opBuild(TokenAnd)},
	{re: orSymRe, build: opBuild(TokenOr)},
	{re: orWordRe, boundary: true, build: opBuild(TokenOr)},
	{re: groupOpenRe, build: opBuild(TokenLParen)},
	{re: groupCloseRe, build: opBuild(TokenRParen)},
}

// Tokenize lexes a raw requirement string into its token sequence. The empty
// string yields an empty sequence ("no requirement"). Any segment matching no
// rule aborts with a *TokenizeError; nothing is dropped silently.
func Tokenize(raw string) ([]Token, error) {
	src := Normalize(raw)
	var toks []Token

	i := 0
	for i < len(src) {
		if src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r' {
			i++
			continue
		}

		tok, width, ok := matchAt(src, i)
		if !ok {
			return nil, &TokenizeError{Pos: i, Segment: segmentAt(src, i)}
		}
		toks = append(toks, tok)
		i += width
	}

	return toks, nil
}

// matchAt tries every rule at src[i:] and keeps the longest successful match;
// rule order breaks length ties.
func matchAt(src string, i int) (Token, int, bool) {
	var best Token
	bestLen := 0
	found := false

	for _, r := range rules {
		m := r.re.FindStringSubmatch(src[i:])
		if m == nil {
			continue
		}
		if r.boundary && !atBoundary(src, i+len(m[0])) {
			continue
		}
		if len(m[0]) <= bestLen {
			continue
		}
		tok, ok := r.build(m, i)
		if !ok {
			continue
		}
		best = tok
		bestLen = len(m[0])
		found = true
	}

	return best, bestLen, found
}

// atBoundary reports whether the character at end (if any) cannot extend a
// code-shaped token.
func atBoundary(src string, end int) bool {
	if end >= len(src) {
		return true
	}
	c := src[end]
	return !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '*')
}

func segmentAt(src string, pos int) string {
	end := strings.IndexAny(src[pos:], " \t\n\r")
	if end < 0 {
		return src[pos:]
	}
	return src[pos : pos+end]
}

func atom(kind TokenKind, text string, pos int, req Requisite) Token {
	return Token{Kind: kind, Text: text, Pos: pos, Req: req}
}

func opBuild(kind TokenKind) func(m []string, pos int) (Token, bool) {
	return func(m []string, pos int) (Token, bool) {
		return Token{Kind: kind, Text: m[0], Pos: pos}, true
	}
}

// patternAtom builds a credits- or courses-with-pattern token. Both brace
// orderings funnel through here so {12}PSIC and PSIC{12} carry an identical
// payload.
func patternAtom(text string, pos int, patternList, amount, countFlag string) (Token, bool) {
	n, ok := positiveInt(amount)
	if !ok {
		return Token{}, false
	}

	parts := strings.Split(patternList, ",")
	patterns := make([]Pattern, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 || len(p) > codeLen {
			return Token{}, false
		}
		patterns = append(patterns, NewPattern(p))
	}

	if countFlag == "C" {
		return atom(TokenCoursesWithPattern, text, pos, CoursesWithPattern{Patterns: patterns, Courses: n}), true
	}
	return atom(TokenCreditsWithPattern, text, pos, CreditsWithPattern{Patterns: patterns, Credits: n}), true
}

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
