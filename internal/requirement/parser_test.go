package requirement

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, raw string) Requirement {
	t.Helper()
	req, err := ParseString(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return req
}

func TestParse_EmptyInputMeansNoRequirement(t *testing.T) {
	req, err := ParseString("")
	if err != nil {
		t.Fatal(err)
	}
	if req != nil {
		t.Fatalf("expected nil requirement, got %#v", req)
	}
}

func TestParse_SingleCourse(t *testing.T) {
	req := mustParse(t, "MATE3031")

	atom, ok := req.(*Atomic)
	if !ok {
		t.Fatalf("expected *Atomic, got %T", req)
	}
	if atom.Req.(Course).Code != "MATE3031" {
		t.Fatalf("unexpected requisite: %#v", atom.Req)
	}
}

func TestParse_OrChainFlattens(t *testing.T) {
	req := mustParse(t, "MATE3031 O MATE3144 O MATE3183")

	or, ok := req.(*Or)
	if !ok {
		t.Fatalf("expected *Or, got %T", req)
	}
	if len(or.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(or.Children))
	}
	for _, c := range or.Children {
		if _, ok := c.(*Atomic); !ok {
			t.Fatalf("expected flattened atomic children, got %T", c)
		}
	}
}

func TestParse_GroupedOrUnderAnd(t *testing.T) {
	req := mustParse(t, "(MATE3063 O MATE3185) Y MATE3020")

	and, ok := req.(*And)
	if !ok {
		t.Fatalf("expected *And, got %T", req)
	}
	if len(and.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(and.Children))
	}

	or, ok := and.Children[0].(*Or)
	if !ok {
		t.Fatalf("expected first child *Or, got %T", and.Children[0])
	}
	if len(or.Children) != 2 {
		t.Fatalf("expected 2 or-children, got %d", len(or.Children))
	}
	if and.Children[1].(*Atomic).Req.(Course).Code != "MATE3020" {
		t.Fatalf("unexpected second child: %#v", and.Children[1])
	}
}

func TestParse_AndBindsTighterThanOr(t *testing.T) {
	implicit := mustParse(t, "MATE3031 O MATE3144 Y MATE3183")
	explicit := mustParse(t, "MATE3031 O (MATE3144 Y MATE3183)")

	if !reflect.DeepEqual(implicit, explicit) {
		t.Fatalf("precedence mismatch:\n%s\n%s", implicit, explicit)
	}

	or, ok := implicit.(*Or)
	if !ok {
		t.Fatalf("expected *Or at the root, got %T", implicit)
	}
	if _, ok := or.Children[1].(*And); !ok {
		t.Fatalf("expected And as second or-child, got %T", or.Children[1])
	}
}

func TestParse_GroupedPairsFlattenIntoOneNode(t *testing.T) {
	req := mustParse(t, "(MATE3031 O MATE3144) O (MATE3183 O MATE3063)")

	or, ok := req.(*Or)
	if !ok {
		t.Fatalf("expected *Or, got %T", req)
	}
	if len(or.Children) != 4 {
		t.Fatalf("expected 4 flattened children, got %d", len(or.Children))
	}
	for _, c := range or.Children {
		if _, ok := c.(*Or); ok {
			t.Fatalf("found directly-mergeable Or child: %#v", c)
		}
	}
}

func TestParse_NestedMixedTreeKeepsLevels(t *testing.T) {
	req := mustParse(t, "(MATE3031 Y MATE3144) O (MATE3183 Y MATE3063)")

	or, ok := req.(*Or)
	if !ok {
		t.Fatalf("expected *Or, got %T", req)
	}
	for _, c := range or.Children {
		and, ok := c.(*And)
		if !ok {
			t.Fatalf("expected And children, got %T", c)
		}
		if len(and.Children) != 2 {
			t.Fatalf("expected 2 and-children, got %d", len(and.Children))
		}
	}
}

func TestParse_SpellingVariantsYieldIdenticalTrees(t *testing.T) {
	braceLeft := mustParse(t, "{12}PSIC")
	braceRight := mustParse(t, "PSIC{12}")

	if !reflect.DeepEqual(braceLeft, braceRight) {
		t.Fatalf("variant trees differ:\n%#v\n%#v", braceLeft, braceRight)
	}
}

func TestParse_BracketsAndParensParseIdentically(t *testing.T) {
	brackets := mustParse(t, "[MATE3063 O MATE3185] Y MATE3020")
	parens := mustParse(t, "(MATE3063 O MATE3185) Y MATE3020")

	if !reflect.DeepEqual(brackets, parens) {
		t.Fatalf("bracket styles parse differently")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"unbalanced open", "(MATE3031 O MATE3144"},
		{"unbalanced close", "MATE3031)"},
		{"empty group", "()"},
		{"dangling or", "MATE3031 O"},
		{"leading and", "Y MATE3031"},
		{"adjacent atoms", "MATE3031 MATE3144"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.raw)
			if err == nil {
				t.Fatalf("expected error for %q", tc.raw)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestParse_ErrorCarriesTokenIndex(t *testing.T) {
	_, err := ParseString("MATE3031 MATE3144")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Index != 1 {
		t.Fatalf("expected offending token index 1, got %d", parseErr.Index)
	}
}

func TestRequirement_StringRoundTrips(t *testing.T) {
	cases := []string{
		"MATE3031",
		"MATE3031 O MATE3144 O MATE3183",
		"(MATE3063 O MATE3185) Y MATE3020",
		"BIOL{12} Y DIR",
		"MATE3031 O (MATE3144 Y MATE3183)",
	}

	for _, raw := range cases {
		first := mustParse(t, raw)
		second := mustParse(t, first.String())
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%q: rendering %q re-parses differently", raw, first.String())
		}
	}
}
