package visiogen

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Segment is one node of a reference variation graph.
type Segment struct {
	ID  string
	Seq string

	// coordinate offset of the segment in the linearized reference
	// (the GFA SO:i tag)
	Offset int

	// haplotype support count (the GFA SR:i tag)
	Support int
}

// Link is a directed adjacency between two segments. Support carries the
// SR:i variant-support annotation when present; the main spine of the
// graph is the zero-support edge class.
type Link struct {
	From       string
	FromOrient string
	To         string
	ToOrient   string
	Support    int
}

// PathStep is one oriented segment visit inside a haplotype path.
type PathStep struct {
	ID     string
	Orient string
}

// Path is a named haplotype traversal of the graph.
type Path struct {
	Name  string
	Steps []PathStep
}

// Graph owns the segments, links, and haplotype paths parsed from a GFA
// file. It is read-only after construction.
type Graph struct {
	Segments map[string]*Segment
	Links    []Link
	Paths    []Path

	// record types the parser does not interpret, preserved verbatim
	Extra []string

	outgoing map[string][]Link
	incoming map[string][]Link
}

// ParseGFA reads a reference graph from a tab-separated GFA file.
// The graph is a required single input, so a malformed record is fatal
// and reported with its line number.
func ParseGFA(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GFA file %s: %w", path, err)
	}
	defer f.Close()

	g := &Graph{
		Segments: make(map[string]*Segment),
		outgoing: make(map[string][]Link),
		incoming: make(map[string][]Link),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		switch cols[0] {
		case "S":
			if len(cols) < 3 {
				return nil, fmt.Errorf("%s:%d: segment record needs an id and a sequence", path, lineNo)
			}
			seg := &Segment{
				ID:      cols[1],
				Seq:     strings.ToUpper(cols[2]),
				Offset:  intTag(cols[3:], "SO"),
				Support: intTag(cols[3:], "SR"),
			}
			g.Segments[seg.ID] = seg

		case "L":
			if len(cols) < 5 {
				return nil, fmt.Errorf("%s:%d: link record needs from/orient/to/orient", path, lineNo)
			}
			link := Link{
				From:       cols[1],
				FromOrient: cols[2],
				To:         cols[3],
				ToOrient:   cols[4],
				Support:    intTag(cols[5:], "SR"),
			}
			g.Links = append(g.Links, link)
			g.outgoing[link.From] = append(g.outgoing[link.From], link)
			g.incoming[link.To] = append(g.incoming[link.To], link)

		case "P":
			if len(cols) < 3 {
				return nil, fmt.Errorf("%s:%d: path record needs a name and a segment list", path, lineNo)
			}
			p := Path{Name: cols[1]}
			for _, step := range strings.Split(cols[2], ",") {
				if step == "" {
					continue
				}
				orient := "+"
				id := step
				if last := step[len(step)-1]; last == '+' || last == '-' {
					orient = string(last)
					id = step[:len(step)-1]
				}
				p.Steps = append(p.Steps, PathStep{ID: id, Orient: orient})
			}
			g.Paths = append(g.Paths, p)

		default:
			g.Extra = append(g.Extra, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read GFA file %s: %w", path, err)
	}

	return g, nil
}

// intTag parses an integer tag like SO:i:123 out of a record's optional
// fields. A missing or malformed tag is 0.
func intTag(fields []string, tag string) int {
	prefix := tag + ":i:"
	for _, f := range fields {
		if strings.HasPrefix(f, prefix) {
			if v, err := strconv.Atoi(f[len(prefix):]); err == nil {
				return v
			}
		}
	}
	return 0
}

// Outgoing returns the links leaving a segment.
func (g *Graph) Outgoing(id string) []Link {
	return g.outgoing[id]
}

// Incoming returns the links arriving at a segment.
func (g *Graph) Incoming(id string) []Link {
	return g.incoming[id]
}
