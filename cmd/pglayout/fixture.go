package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pangraph/layoutsgd/core"
	"github.com/pangraph/layoutsgd/xp"
)

// fixture is a small JSON graph+paths format pglayout reads to exercise the
// engine without a full pangenome deserializer. It is not a GFA or FASTA
// reader; it exists solely so the CLI has something to parse.
type fixture struct {
	Nodes []uint64      `json:"nodes"` // Nodes[i] is the nucleotide length of node i
	Edges []fixtureEdge `json:"edges"`
	Paths []fixturePath `json:"paths"`
}

type fixtureEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type fixturePath struct {
	Steps []string `json:"steps"`
}

// loadFixture reads path as JSON and builds a *core.Graph plus an *xp.PathIndex
// over every path in the fixture, in file order.
func loadFixture(path string) (*core.Graph, *xp.PathIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, err
	}

	g := core.NewGraph(core.WithCapacityHint(len(f.Nodes)))
	for _, length := range f.Nodes {
		if _, err := g.AddNode(length); err != nil {
			return nil, nil, err
		}
	}

	for _, e := range f.Edges {
		from, err := parseHandle(e.From)
		if err != nil {
			return nil, nil, err
		}
		to, err := parseHandle(e.To)
		if err != nil {
			return nil, nil, err
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, nil, err
		}
	}

	defs := make([]xp.PathDef, len(f.Paths))
	for i, p := range f.Paths {
		steps := make([]core.Handle, len(p.Steps))
		for r, s := range p.Steps {
			h, err := parseHandle(s)
			if err != nil {
				return nil, nil, err
			}
			steps[r] = h
		}
		defs[i] = xp.PathDef{Steps: steps}
	}

	idx, err := xp.Build(g, defs)
	if err != nil {
		return nil, nil, err
	}
	return g, idx, nil
}

// parseHandle decodes a fixture handle string like "3+" (forward) or "3-"
// (reverse) into a core.Handle.
func parseHandle(s string) (core.Handle, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("pglayout: invalid handle %q", s)
	}
	orientation := s[len(s)-1]
	nodeStr := s[:len(s)-1]
	nodeIdx, err := strconv.ParseUint(nodeStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("pglayout: invalid handle %q: %w", s, err)
	}
	switch orientation {
	case '+':
		return core.PackHandle(nodeIdx, false), nil
	case '-':
		return core.PackHandle(nodeIdx, true), nil
	default:
		return 0, fmt.Errorf("pglayout: invalid handle %q, want trailing '+' or '-'", s)
	}
}

func usePathsFor(idx *xp.PathIndex) []xp.PathID {
	ids := make([]xp.PathID, idx.PathCount())
	for i := range ids {
		ids[i] = xp.PathID(i)
	}
	return ids
}

func formatOrder(order []core.Handle) string {
	parts := make([]string, len(order))
	for i, h := range order {
		orient := "+"
		if h.IsReverse() {
			orient = "-"
		}
		parts[i] = fmt.Sprintf("%d%s", h.NodeIndex(), orient)
	}
	return strings.Join(parts, " ")
}
