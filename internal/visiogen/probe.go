package visiogen

import "sort"

// Probe is one candidate k-mer with the attributes downstream filters and
// the assay design care about.
type Probe struct {
	// the k-mer sequence itself
	Kmer string

	// every offset the k-mer occurs at, ascending
	Locations []int

	// truncated GC percentage of each half of the k-mer, split at k/2
	FirstHalfGC  int
	SecondHalfGC int

	// homopolymer diversity in [0,1]: 1 - longestRun/k
	Complexity float64

	// the base at the structural junction of the probe (offset k/2 - 1)
	JunctionBase byte

	// ranking score, populated by GeneProbes.Best
	Score float64
}

// NewProbe derives a probe's scoring attributes from its k-mer.
func NewProbe(kmer string, locations []int) Probe {
	half := len(kmer) / 2

	junction := byte('N')
	if j := half - 1; j >= 0 && j < len(kmer) {
		junction = kmer[j]
	}

	return Probe{
		Kmer:         kmer,
		Locations:    locations,
		FirstHalfGC:  gcPercent(kmer[:half]),
		SecondHalfGC: gcPercent(kmer[half:]),
		Complexity:   homopolymerComplexity(kmer),
		JunctionBase: junction,
	}
}

// homopolymerComplexity scores a sequence between 0.0 (one long run) and
// approaching 1.0 (no base repeated consecutively).
func homopolymerComplexity(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}

	maxRun, run := 1, 1
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 1
		}
	}
	return 1.0 - float64(maxRun)/float64(len(seq))
}

// ProbesFromTiles wraps each tiled k-mer and its positions in a Probe.
func ProbesFromTiles(tiled map[string][]int) []Probe {
	probes := make([]Probe, 0, len(tiled))
	for kmer, locations := range tiled {
		probes = append(probes, NewProbe(kmer, locations))
	}
	return probes
}

// GeneProbes is the probe set designed against one gene or graph segment,
// together with the off-target hits recorded for its k-mers.
type GeneProbes struct {
	// gene name or graph segment identifier
	Gene string

	// 1-based inclusive genomic coordinates of the region
	Start int
	End   int

	// "+" or "-"
	Strand string

	Probes []Probe

	// k-mer to the off-target index shards it was found in
	Hits map[string][]string
}

// Best returns a copy of the set holding only the n highest-scoring probes.
// Score is the probe's homopolymer complexity; ties break on the k-mer so
// the selection is deterministic. n < 1 keeps every probe.
func (g GeneProbes) Best(n int) GeneProbes {
	ranked := make([]Probe, len(g.Probes))
	copy(ranked, g.Probes)
	for i := range ranked {
		ranked[i].Score = ranked[i].Complexity
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Kmer < ranked[j].Kmer
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	g.Probes = ranked
	return g
}

// Kmers returns the k-mer of every probe in the set.
func (g GeneProbes) Kmers() []string {
	kmers := make([]string, len(g.Probes))
	for i, p := range g.Probes {
		kmers[i] = p.Kmer
	}
	return kmers
}
