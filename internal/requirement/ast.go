package requirement

import "strings"

// Requirement is the parsed boolean-expression tree of a course's
// prerequisite text. A nil Requirement means "no requirement" and is always
// satisfied. Trees are immutable after Parse and safe to share across
// concurrent evaluations.
type Requirement interface {
	// String renders the tree back in canonical surface form.
	String() string

	isRequirement()
}

// Atomic wraps a single requisite as a Requirement leaf.
type Atomic struct {
	Req Requisite
}

func (a *Atomic) isRequirement() {}

func (a *Atomic) String() string { return a.Req.String() }

// And is satisfied when every child is. Children has length >= 2 and never
// contains a directly-mergeable And child.
type And struct {
	Children []Requirement
}

func (a *And) isRequirement() {}

func (a *And) String() string { return joinChildren(a.Children, " Y ") }

// Or is satisfied when at least one child is. Children has length >= 2 and
// never contains a directly-mergeable Or child.
type Or struct {
	Children []Requirement
}

func (o *Or) isRequirement() {}

func (o *Or) String() string { return joinChildren(o.Children, " O ") }

// newAnd combines two subtrees under AND, flattening And children so the
// resulting node stays one level deep per combinator run.
func newAnd(left, right Requirement) Requirement {
	children := make([]Requirement, 0, 2)
	children = appendAnd(children, left)
	children = appendAnd(children, right)
	return &And{Children: children}
}

// newOr is the OR counterpart of newAnd.
func newOr(left, right Requirement) Requirement {
	children := make([]Requirement, 0, 2)
	children = appendOr(children, left)
	children = appendOr(children, right)
	return &Or{Children: children}
}

func appendAnd(dst []Requirement, r Requirement) []Requirement {
	if a, ok := r.(*And); ok {
		return append(dst, a.Children...)
	}
	return append(dst, r)
}

func appendOr(dst []Requirement, r Requirement) []Requirement {
	if o, ok := r.(*Or); ok {
		return append(dst, o.Children...)
	}
	return append(dst, r)
}

func joinChildren(children []Requirement, sep string) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		s := c.String()
		// parenthesize compound children so the rendering re-parses to the
		// same tree
		switch c.(type) {
		case *And, *Or:
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep)
}
