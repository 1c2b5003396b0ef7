package requirement

import "fmt"

// TokenKind identifies what a lexed segment of a requirement string means.
// The atomic kinds carry their payload as a Requisite on the token.
type TokenKind int

const (
	TokenCourse TokenKind = iota
	TokenDepartment
	TokenProgram
	TokenCreditsWithPattern
	TokenCoursesWithPattern
	TokenEnglishLevel
	TokenYearOfStudy
	TokenCreditsUntilGraduation
	TokenGraduationStatus
	TokenExam
	TokenDirectorApproval
	TokenAnd
	TokenOr
	TokenLParen
	TokenRParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenCourse:
		return "COURSE"
	case TokenDepartment:
		return "DEPARTMENT"
	case TokenProgram:
		return "PROGRAM"
	case TokenCreditsWithPattern:
		return "CREDITS_WITH_PATTERN"
	case TokenCoursesWithPattern:
		return "COURSES_WITH_PATTERN"
	case TokenEnglishLevel:
		return "ENGLISH_LEVEL"
	case TokenYearOfStudy:
		return "YEAR_OF_STUDY"
	case TokenCreditsUntilGraduation:
		return "CREDITS_UNTIL_GRADUATION"
	case TokenGraduationStatus:
		return "GRADUATION_STATUS"
	case TokenExam:
		return "EXAM"
	case TokenDirectorApproval:
		return "DIRECTOR_APPROVAL"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexed segment of a requirement string. Pos is the byte offset
// in the normalized input. Req is non-nil exactly for the atomic kinds.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
	Req  Requisite
}

// IsAtomic reports whether the token stands for a single requisite rather
// than a combinator or grouping character.
func (t Token) IsAtomic() bool {
	return t.Req != nil
}

// TokenizeError reports the first substring of a requirement string that
// matches no rule of the requisite vocabulary. Positions refer to the
// normalized input (uppercased, accents folded).
type TokenizeError struct {
	Pos     int
	Segment string
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("unrecognized segment %q at position %d", e.Segment, e.Pos)
}
