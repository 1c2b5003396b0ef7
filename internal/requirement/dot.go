package requirement

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"
)

// DOT renders a parsed requirement tree as a Graphviz digraph, combinator
// nodes labeled Y/O and requisites as boxes. Meant for inspection of what a
// raw string parsed into; a nil requirement renders a single placeholder
// node.
func DOT(req Requirement) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("requirement"); err != nil {
		return "", fmt.Errorf("failed to build DOT graph: %w", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("failed to build DOT graph: %w", err)
	}

	w := &dotWalker{g: g}
	if req == nil {
		if err := g.AddNode("requirement", "n0", map[string]string{"label": quoteLabel("no requirement")}); err != nil {
			return "", fmt.Errorf("failed to build DOT graph: %w", err)
		}
		return g.String(), nil
	}

	if _, err := w.walk(req); err != nil {
		return "", fmt.Errorf("failed to build DOT graph: %w", err)
	}
	return g.String(), nil
}

type dotWalker struct {
	g    *gographviz.Graph
	next int
}

func (w *dotWalker) walk(req Requirement) (string, error) {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	var label string
	var shape string
	var children []Requirement

	switch r := req.(type) {
	case *Atomic:
		label = r.Req.String()
		shape = "box"
	case *And:
		label = "Y"
		shape = "oval"
		children = r.Children
	case *Or:
		label = "O"
		shape = "oval"
		children = r.Children
	default:
		return "", fmt.Errorf("unsupported requirement %T", req)
	}

	attrs := map[string]string{
		"label": quoteLabel(label),
		"shape": shape,
	}
	if err := w.g.AddNode("requirement", id, attrs); err != nil {
		return "", err
	}

	for _, child := range children {
		childID, err := w.walk(child)
		if err != nil {
			return "", err
		}
		if err := w.g.AddEdge(id, childID, true, nil); err != nil {
			return "", err
		}
	}

	return id, nil
}

func quoteLabel(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
