package visiogen

// FilterByRegion keeps the probes consistent with a genomic window.
// Strict inclusion requires every recorded location inside [start, end];
// lenient inclusion requires at least one. A new slice is returned, the
// input set is never modified.
func FilterByRegion(probes []Probe, start, end int, strict bool) []Probe {
	kept := []Probe{}
	for _, p := range probes {
		if inRegion(p.Locations, start, end, strict) {
			kept = append(kept, p)
		}
	}
	return kept
}

func inRegion(locations []int, start, end int, strict bool) bool {
	if strict {
		for _, loc := range locations {
			if loc < start || loc > end {
				return false
			}
		}
		return true
	}

	for _, loc := range locations {
		if loc >= start && loc <= end {
			return true
		}
	}
	return false
}

// Oriented returns the probe set in reporting orientation: reverse-strand
// regions have each k-mer reverse-complemented. Orientation is a display
// transform only, the recorded locations are left alone.
func (g GeneProbes) Oriented() GeneProbes {
	if g.Strand != "-" {
		return g
	}

	probes := make([]Probe, len(g.Probes))
	for i, p := range g.Probes {
		probes[i] = NewProbe(ReverseComplement(p.Kmer), p.Locations)
	}
	g.Probes = probes
	return g
}
