package visiogen

import (
	"sort"
	"strconv"
	"strings"
)

// CoreStrategy decides which graph segments are consistently present
// across haplotypes and therefore safe to design probes against.
//
// Prior revisions of this tool grew several divergent traversal heuristics
// for the same decision (degree-based walks, support thresholding, bubble
// depth tracking). They are consolidated here behind one interface with
// two variants, selected by whether the graph carries explicit paths.
type CoreStrategy interface {
	// CoreSegments returns the selected segment identifiers. The order
	// is strategy-dependent but deterministic for a fixed graph.
	CoreSegments(g *Graph) []string
}

// SelectCoreStrategy picks path intersection when haplotype paths are
// present and falls back to topology traversal otherwise.
func SelectCoreStrategy(g *Graph) CoreStrategy {
	if len(g.Paths) > 0 {
		return PathIntersection{}
	}
	return TopologyTraversal{}
}

// PathIntersection marks a segment core when it occurs exactly once in
// every haplotype path. Segments of a bubble appear in only some paths
// (or repeatedly, for duplications) and are excluded.
type PathIntersection struct{}

// CoreSegments returns the core segments sorted by identifier.
func (PathIntersection) CoreSegments(g *Graph) []string {
	if len(g.Paths) == 0 {
		return nil
	}

	var core map[string]bool
	for _, path := range g.Paths {
		counts := make(map[string]int)
		for _, step := range path.Steps {
			counts[step.ID]++
		}

		unique := make(map[string]bool)
		for id, n := range counts {
			if n == 1 {
				unique[id] = true
			}
		}

		if core == nil {
			core = unique
			continue
		}
		for id := range core {
			if !unique[id] {
				delete(core, id)
			}
		}
	}

	ids := make([]string, 0, len(core))
	for id := range core {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return segmentIDLess(ids[i], ids[j]) })
	return ids
}

// TopologyTraversal walks the graph's main spine (the zero-support edge
// class) from a start segment, tracking how many variant branches are
// open. A segment is emitted only while no branch is open, i.e. while the
// walk is outside every bubble.
type TopologyTraversal struct {
	// segment to start from. Empty picks the lowest-id segment with no
	// incoming spine edge, or the lowest id overall
	Start string
}

// CoreSegments returns the spine segments in traversal order.
func (t TopologyTraversal) CoreSegments(g *Graph) []string {
	current := t.Start
	if current == "" {
		current = spineStart(g)
	}
	if current == "" {
		return nil
	}

	visited := make(map[string]bool)

	// segments the walk left along a spine edge; targets of backward
	// searches when confirming that a variant branch has merged back
	departedSpine := make(map[string]bool)

	// variant links already counted as a confirmed merge
	merged := make(map[Link]bool)

	depth := 0
	var core []string

	for current != "" && !visited[current] {
		visited[current] = true

		// close branches whose variant edges trace back to the spine
		for _, in := range g.Incoming(current) {
			if in.Support == 0 || merged[in] {
				continue
			}
			if tracesToSpine(g, in.From, departedSpine) {
				merged[in] = true
				if depth > 0 {
					depth--
				}
			}
		}

		if depth == 0 {
			core = append(core, current)
		}

		// open a branch for every unvisited variant edge leaving here
		var next string
		for _, out := range g.Outgoing(current) {
			if visited[out.To] {
				continue
			}
			if out.Support > 0 {
				depth++
				continue
			}
			if next == "" || segmentIDLess(out.To, next) {
				next = out.To
			}
		}

		if next != "" {
			departedSpine[current] = true
			current = next
			continue
		}

		// no spine edge left: the lowest unvisited variant target
		// substitutes, otherwise the traversal is done
		for _, out := range g.Outgoing(current) {
			if out.Support > 0 && !visited[out.To] {
				if next == "" || segmentIDLess(out.To, next) {
					next = out.To
				}
			}
		}
		current = next
	}

	return core
}

// tracesToSpine reports whether a backward breadth-first search from a
// segment, moving only through variant-class edges, reaches a segment the
// spine walk already departed from.
func tracesToSpine(g *Graph, from string, departedSpine map[string]bool) bool {
	seen := map[string]bool{from: true}
	queue := []string{from}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if departedSpine[id] {
			return true
		}

		for _, in := range g.Incoming(id) {
			if in.Support == 0 || seen[in.From] {
				continue
			}
			seen[in.From] = true
			queue = append(queue, in.From)
		}
	}
	return false
}

// spineStart picks the traversal start deterministically: the lowest-id
// segment without an incoming spine edge, falling back to the lowest id.
func spineStart(g *Graph) string {
	var start, lowest string
	for id := range g.Segments {
		if lowest == "" || segmentIDLess(id, lowest) {
			lowest = id
		}

		hasSpineIn := false
		for _, in := range g.Incoming(id) {
			if in.Support == 0 {
				hasSpineIn = true
				break
			}
		}
		if !hasSpineIn && (start == "" || segmentIDLess(id, start)) {
			start = id
		}
	}

	if start == "" {
		return lowest
	}
	return start
}

// segmentIDLess orders segment identifiers numerically when both carry a
// numeric suffix (s2 < s10), lexicographically otherwise.
func segmentIDLess(a, b string) bool {
	an, aok := idNumber(a)
	bn, bok := idNumber(b)
	if aok && bok && an != bn {
		return an < bn
	}
	return a < b
}

func idNumber(id string) (int, bool) {
	i := strings.IndexFunc(id, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}
