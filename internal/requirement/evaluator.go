package requirement

import (
	"fmt"
	"strings"
	"time"
)

// Evaluator walks a Requirement tree against a student record. It is
// stateless apart from an optional latency observer and safe for concurrent
// use; it never mutates the tree or the record.
type Evaluator struct {
	latencyObserver EvalLatencyObserver
}

type EvaluatorOption func(*Evaluator)

func WithEvalLatencyObserver(observer EvalLatencyObserver) EvaluatorOption {
	return func(e *Evaluator) {
		e.latencyObserver = observer
	}
}

func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate is the plain-function form for callers that need no observer.
func Evaluate(req Requirement, st *StudentRecord) (bool, string) {
	return NewEvaluator().Evaluate(req, st)
}

// Evaluate returns whether the student satisfies the requirement and, when
// not, a human-readable description of what is missing. It is total: every
// well-formed tree evaluates without error, and a failed verdict is an
// ordinary result, not an error. A nil requirement is always satisfied.
func (e *Evaluator) Evaluate(req Requirement, st *StudentRecord) (bool, string) {
	if req == nil {
		return true, ""
	}
	if st == nil {
		st = &StudentRecord{}
	}
	ok, missing, _ := e.eval(req, st)
	return ok, missing
}

// eval reports compound=true when missing joins more than one part, so the
// parent can parenthesize the group exactly when nesting demands it
// ("(MATE3063 or MATE3185) and MATE3020").
func (e *Evaluator) eval(req Requirement, st *StudentRecord) (ok bool, missing string, compound bool) {
	switch r := req.(type) {
	case *Atomic:
		ok, missing = e.evalRequisite(r.Req, st)
		return ok, missing, false

	case *And:
		var parts []string
		for _, child := range r.Children {
			childOK, childMissing, childCompound := e.eval(child, st)
			if childOK {
				continue
			}
			parts = append(parts, group(childMissing, childCompound))
		}
		if len(parts) == 0 {
			return true, "", false
		}
		return false, strings.Join(parts, " and "), len(parts) > 1

	case *Or:
		parts := make([]string, 0, len(r.Children))
		for _, child := range r.Children {
			childOK, childMissing, childCompound := e.eval(child, st)
			if childOK {
				return true, "", false
			}
			parts = append(parts, group(childMissing, childCompound))
		}
		return false, strings.Join(parts, " or "), len(parts) > 1

	default:
		// unreachable for trees built by Parse; keeps evaluation total
		return false, fmt.Sprintf("unsupported requirement %T", req), false
	}
}

func group(missing string, compound bool) string {
	if compound {
		return "(" + missing + ")"
	}
	return missing
}

func (e *Evaluator) evalRequisite(req Requisite, st *StudentRecord) (bool, string) {
	start := time.Now()
	defer func() {
		if e.latencyObserver != nil {
			e.latencyObserver.ObserveEvalLatency(req.Kind(), time.Since(start))
		}
	}()

	switch r := req.(type) {
	case Course:
		if st.HasCourse(r.Code) {
			return true, ""
		}
		return false, r.Code

	case Department:
		if st.Department == r.Code {
			return true, ""
		}
		return false, fmt.Sprintf("must belong to department %s", r.Code)

	case Program:
		if st.Program == r.Code {
			return true, ""
		}
		return false, fmt.Sprintf("must belong to program %s", r.Code)

	case CreditsWithPattern:
		got := st.CreditsMatching(r.Patterns)
		if got >= r.Credits {
			return true, ""
		}
		return false, fmt.Sprintf("needs %d credits matching %s, has %d", r.Credits, joinPatterns(r.Patterns), got)

	case CoursesWithPattern:
		got := st.CoursesMatching(r.Patterns)
		if got >= r.Courses {
			return true, ""
		}
		return false, fmt.Sprintf("needs %d courses matching %s, has %d", r.Courses, joinPatterns(r.Patterns), got)

	case EnglishLevel:
		if st.EnglishLevel >= r.Min {
			return true, ""
		}
		return false, fmt.Sprintf("needs English level %d, has %d", r.Min, st.EnglishLevel)

	case YearOfStudy:
		if st.Year >= r.Year {
			return true, ""
		}
		return false, fmt.Sprintf("needs year %d of study, has %d", r.Year, st.Year)

	case CreditsUntilGraduation:
		if st.CreditsRemaining <= r.Max {
			return true, ""
		}
		return false, fmt.Sprintf("needs %d or fewer credits left to graduate, has %d", r.Max, st.CreditsRemaining)

	case GraduationStatus:
		if st.Graduate == r.Graduate {
			return true, ""
		}
		if r.Graduate {
			return false, "must be a graduate student"
		}
		return false, "must be an undergraduate student"

	case Exam:
		if st.HasExam(r.Name) {
			return true, ""
		}
		return false, fmt.Sprintf("needs exam %s", r.Name)

	case DirectorApproval:
		if st.HasDirectorApproval() {
			return true, ""
		}
		return false, "needs director approval"

	default:
		return false, fmt.Sprintf("unsupported requisite %T", req)
	}
}
