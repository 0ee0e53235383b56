package visiogen

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ReportPath is the default probe report name when the caller gave none:
// probes_<dd-mm-HH-MM>.fasta in the working directory.
func ReportPath(out string) string {
	if out != "" {
		return out
	}
	return fmt.Sprintf("probes_%s.fasta", time.Now().Format("02-01-15-04"))
}

// WriteProbes appends every surviving probe set to a FASTA-like report.
// One record per probe:
//
//	>{gene}_{i}    {positions} : {count} copies
//	{kmer}
//
// and one summary log line per gene. verbose additionally logs one
// coordinate line per probe location.
func WriteProbes(genes []GeneProbes, path string, k int, verbose bool) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer f.Close()

	for _, g := range genes {
		for i, p := range g.Probes {
			positions := make([]string, len(p.Locations))
			for j, loc := range p.Locations {
				positions[j] = strconv.Itoa(loc)
			}

			header := fmt.Sprintf(">%s_%d    %s : %d copies",
				g.Gene, i+1, strings.Join(positions, ","), len(p.Locations))
			if _, err := fmt.Fprintf(f, "%s\n%s\n", header, p.Kmer); err != nil {
				return fmt.Errorf("failed to write report %s: %w", path, err)
			}
		}

		stderr.Printf("gene: %s, strand: %s, start: %d, end: %d, probes: %d",
			g.Gene, g.Strand, g.Start, g.End, len(g.Probes))

		if verbose {
			logProbeCoords(g, k)
		}
	}

	return nil
}

// logProbeCoords logs every probe location with the end coordinate the
// probe covers. On the reverse strand the end runs backwards from the
// start, floored at zero.
func logProbeCoords(g GeneProbes, k int) {
	for _, p := range g.Probes {
		for _, start := range p.Locations {
			end := start + k
			if g.Strand == "-" {
				end = 0
				if start >= k {
					end = start - k
				}
			}
			stderr.Printf("%s,%d,%d", p.Kmer, start, end)
		}
	}
}
