package scene

import (
	"cmp"
	"slices"
)

// Stats summarizes the contents of a scene.
type Stats struct {
	Elements int            // shapes and groups, at every depth
	Groups   int            // group elements
	MaxDepth int            // deepest group nesting; 0 when there are no groups
	ByKind   map[string]int // element count per kind
}

// KindCount is one row of [Stats.Kinds].
type KindCount struct {
	Kind  string
	Count int
}

// Stats walks the element tree.
func (s *Scene) Stats() Stats {
	st := Stats{ByKind: make(map[string]int)}
	var walk func(es []Element, depth int)
	walk = func(es []Element, depth int) {
		for _, e := range es {
			st.Elements++
			st.ByKind[e.Kind]++
			if e.Kind == KindGroup {
				st.Groups++
				st.MaxDepth = max(st.MaxDepth, depth+1)
				walk(e.Children, depth+1)
			}
		}
	}
	walk(s.Elements, 0)
	return st
}

// Kinds returns the per-kind counts sorted by descending count, then name.
func (st Stats) Kinds() []KindCount {
	out := make([]KindCount, 0, len(st.ByKind))
	for k, n := range st.ByKind {
		out = append(out, KindCount{Kind: k, Count: n})
	}
	slices.SortFunc(out, func(a, b KindCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return out
}
