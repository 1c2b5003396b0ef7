package app

import (
	"errors"

	"github.com/awmpietro/prereq-inference-case/internal/gate"
	"github.com/awmpietro/prereq-inference-case/internal/requirement"
)

type Parser interface {
	ParseString(raw string) (requirement.Requirement, error)
}

type Evaluator interface {
	Evaluate(req requirement.Requirement, st *requirement.StudentRecord) (bool, string)
}

type Cache interface {
	GetOrCompute(raw string, fn func() (requirement.Requirement, error)) (requirement.Requirement, error)
}

type DecisionGate interface {
	Decide(facts gate.Facts) (gate.Outcome, error)
}

// Verdict is what the service hands to external consumers for one
// (requirement, student) pair. Unverifiable marks requirement text that
// failed to tokenize or parse; such courses are flagged for manual review,
// never treated as satisfied or failed.
type Verdict struct {
	Satisfied    bool         `json:"satisfied"`
	Missing      string       `json:"missing,omitempty"`
	Unverifiable bool         `json:"unverifiable,omitempty"`
	Reason       string       `json:"reason,omitempty"`
	Outcome      gate.Outcome `json:"outcome"`
}

// Rendering is the inspection view of a requirement string.
type Rendering struct {
	Normalized string `json:"normalized"`
	DOT        string `json:"dot"`
}

type Service struct {
	parser    Parser
	evaluator Evaluator
	cache     Cache
	gate      DecisionGate
}

func NewService(parser Parser, evaluator Evaluator, cache Cache, g DecisionGate) *Service {
	return &Service{parser: parser, evaluator: evaluator, cache: cache, gate: g}
}

// Check parses (cached) and evaluates one requirement string against a
// student record. The record is cloned first and never mutated. An empty raw
// string means "no requirement" and is satisfied.
func (s *Service) Check(raw string, st *requirement.StudentRecord) (*Verdict, error) {
	st = st.Clone()

	req, err := s.cache.GetOrCompute(raw, func() (requirement.Requirement, error) {
		return s.parser.ParseString(raw)
	})
	if err != nil {
		if !isRequirementDataError(err) {
			return nil, err
		}
		v := &Verdict{Unverifiable: true, Reason: err.Error()}
		outcome, gerr := s.gate.Decide(factsFor(v, st))
		if gerr != nil {
			return nil, gerr
		}
		v.Outcome = outcome
		return v, nil
	}

	satisfied, missing := s.evaluator.Evaluate(req, st)
	v := &Verdict{Satisfied: satisfied, Missing: missing}

	outcome, err := s.gate.Decide(factsFor(v, st))
	if err != nil {
		return nil, err
	}
	v.Outcome = outcome
	return v, nil
}

// Render parses (cached) and returns the canonical rendering plus a DOT
// graph of the tree. Tokenize/parse failures surface as errors here; there
// is no verdict to soften them into.
func (s *Service) Render(raw string) (*Rendering, error) {
	req, err := s.cache.GetOrCompute(raw, func() (requirement.Requirement, error) {
		return s.parser.ParseString(raw)
	})
	if err != nil {
		return nil, err
	}

	dot, err := requirement.DOT(req)
	if err != nil {
		return nil, err
	}

	normalized := ""
	if req != nil {
		normalized = req.String()
	}
	return &Rendering{Normalized: normalized, DOT: dot}, nil
}

// isRequirementDataError separates bad requirement text (expected, scoped to
// one course) from programming or configuration errors.
func isRequirementDataError(err error) bool {
	var tokErr *requirement.TokenizeError
	var parseErr *requirement.ParseError
	return errors.As(err, &tokErr) || errors.As(err, &parseErr)
}

func factsFor(v *Verdict, st *requirement.StudentRecord) gate.Facts {
	return gate.Facts{
		Satisfied:        v.Satisfied,
		Unverifiable:     v.Unverifiable,
		Year:             st.Year,
		Graduate:         st.Graduate,
		CreditsRemaining: st.CreditsRemaining,
		EnglishLevel:     st.EnglishLevel,
	}
}
