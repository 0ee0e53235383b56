package visiogen

// QualityBounds are the per-probe acceptance criteria applied after tiling.
type QualityBounds struct {
	// required junction base. 0 means no constraint
	CenterBase byte

	// inclusive GC percentage bounds for each probe half
	MinGC int
	MaxGC int

	// accept any GC content
	SkipGC bool
}

// FilterQuality returns a copy of the set holding only the probes whose
// junction base and half-GC percentages satisfy the bounds. The predicate
// is pure and per-probe, so evaluation fans out across the pool.
func (g GeneProbes) FilterQuality(pool *Pool, bounds QualityBounds) GeneProbes {
	keep := make([]bool, len(g.Probes))

	pool.Each(len(g.Probes), func(i int) {
		keep[i] = bounds.accepts(g.Probes[i])
	})

	kept := []Probe{}
	for i, p := range g.Probes {
		if keep[i] {
			kept = append(kept, p)
		}
	}

	g.Probes = kept
	return g
}

func (b QualityBounds) accepts(p Probe) bool {
	if b.CenterBase != 0 && p.JunctionBase != b.CenterBase {
		return false
	}
	if b.SkipGC {
		return true
	}

	firstOK := b.MinGC <= p.FirstHalfGC && p.FirstHalfGC <= b.MaxGC
	secondOK := b.MinGC <= p.SecondHalfGC && p.SecondHalfGC <= b.MaxGC
	return firstOK && secondOK
}
