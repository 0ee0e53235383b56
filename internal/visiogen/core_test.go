package visiogen

import (
	"reflect"
	"testing"
)

func pathGraph(paths ...[]string) *Graph {
	g := &Graph{
		Segments: make(map[string]*Segment),
		outgoing: make(map[string][]Link),
		incoming: make(map[string][]Link),
	}
	for i, ids := range paths {
		p := Path{Name: string(rune('a' + i))}
		for _, id := range ids {
			g.Segments[id] = &Segment{ID: id}
			p.Steps = append(p.Steps, PathStep{ID: id, Orient: "+"})
		}
		g.Paths = append(g.Paths, p)
	}
	return g
}

func Test_PathIntersection(t *testing.T) {
	// A and C flank a bubble holding B and D
	g := pathGraph(
		[]string{"A", "B", "C"},
		[]string{"A", "D", "C"},
	)

	got := PathIntersection{}.CoreSegments(g)

	want := []string{"A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CoreSegments = %v, want %v", got, want)
	}
}

func Test_PathIntersection_duplicates(t *testing.T) {
	// B repeats inside the first path, so it is not unique there
	g := pathGraph(
		[]string{"A", "B", "B", "C"},
		[]string{"A", "B", "C"},
	)

	got := PathIntersection{}.CoreSegments(g)

	want := []string{"A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CoreSegments with a repeated segment = %v, want %v", got, want)
	}
}

func Test_PathIntersection_pathOrderIrrelevant(t *testing.T) {
	forward := pathGraph([]string{"A", "B", "C"}, []string{"A", "D", "C"})
	reversed := pathGraph([]string{"A", "D", "C"}, []string{"A", "B", "C"})

	if !reflect.DeepEqual(
		PathIntersection{}.CoreSegments(forward),
		PathIntersection{}.CoreSegments(reversed),
	) {
		t.Error("core segment selection must be symmetric in path order")
	}
}

// linkGraph builds a pathless graph from (from, to, support) triples.
func linkGraph(links [][3]interface{}) *Graph {
	g := &Graph{
		Segments: make(map[string]*Segment),
		outgoing: make(map[string][]Link),
		incoming: make(map[string][]Link),
	}
	add := func(id string) {
		if g.Segments[id] == nil {
			g.Segments[id] = &Segment{ID: id}
		}
	}
	for _, l := range links {
		from, to, support := l[0].(string), l[1].(string), l[2].(int)
		add(from)
		add(to)
		link := Link{From: from, FromOrient: "+", To: to, ToOrient: "+", Support: support}
		g.Links = append(g.Links, link)
		g.outgoing[from] = append(g.outgoing[from], link)
		g.incoming[to] = append(g.incoming[to], link)
	}
	return g
}

func Test_TopologyTraversal_linear(t *testing.T) {
	g := linkGraph([][3]interface{}{
		{"s1", "s2", 0},
		{"s2", "s3", 0},
	})

	got := TopologyTraversal{}.CoreSegments(g)

	want := []string{"s1", "s2", "s3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("linear spine = %v, want %v", got, want)
	}
}

func Test_TopologyTraversal_bubble(t *testing.T) {
	// s1 -> s2 -> s4 is the spine; s3 is a variant allele of s2's locus
	// branching off s1 and merging back at s4
	g := linkGraph([][3]interface{}{
		{"s1", "s2", 0},
		{"s1", "s3", 1},
		{"s2", "s4", 0},
		{"s3", "s4", 1},
		{"s4", "s5", 0},
	})

	got := TopologyTraversal{}.CoreSegments(g)

	// s2 sits inside the open bubble, s4 is where the branch merges back
	want := []string{"s1", "s4", "s5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bubble traversal = %v, want %v", got, want)
	}
}

func Test_TopologyTraversal_deterministic(t *testing.T) {
	g := linkGraph([][3]interface{}{
		{"s1", "s2", 0},
		{"s1", "s3", 1},
		{"s2", "s4", 0},
		{"s3", "s4", 1},
		{"s4", "s5", 0},
	})

	first := TopologyTraversal{}.CoreSegments(g)
	for i := 0; i < 10; i++ {
		if got := (TopologyTraversal{}).CoreSegments(g); !reflect.DeepEqual(got, first) {
			t.Fatalf("traversal is not deterministic: %v vs %v", got, first)
		}
	}
}

func Test_TopologyTraversal_startSelection(t *testing.T) {
	// s10 sorts after s2 numerically; the start is the segment without
	// an incoming spine edge, which is s2
	g := linkGraph([][3]interface{}{
		{"s2", "s10", 0},
	})

	got := TopologyTraversal{}.CoreSegments(g)

	want := []string{"s2", "s10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("start selection walked %v, want %v", got, want)
	}
}

func Test_SelectCoreStrategy(t *testing.T) {
	withPaths := pathGraph([]string{"A"})
	if _, ok := SelectCoreStrategy(withPaths).(PathIntersection); !ok {
		t.Error("a graph with paths must select path intersection")
	}

	noPaths := linkGraph([][3]interface{}{{"s1", "s2", 0}})
	if _, ok := SelectCoreStrategy(noPaths).(TopologyTraversal); !ok {
		t.Error("a pathless graph must select topology traversal")
	}
}

func Test_segmentIDLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"s2", "s10", true},
		{"s10", "s2", false},
		{"s1", "s1", false},
		{"alpha", "beta", true},
	}
	for _, tt := range tests {
		if got := segmentIDLess(tt.a, tt.b); got != tt.want {
			t.Errorf("segmentIDLess(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
