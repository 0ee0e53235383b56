package visiogen

import (
	"errors"
	"fmt"

	"github.com/sanger-pathogens/visiogen/config"
)

// DesignFromGFF designs probes for each requested gene: the target FASTA
// is tiled once, each gene's coordinates are looked up in the annotation,
// and the shared probe pool is narrowed per gene by region, quality, and
// off-target screening. A gene that cannot be found or keeps no probes is
// reported and skipped; the run continues for the rest.
func DesignFromGFF(c config.Config) error {
	pool := NewPool(c.Threads)

	seq, err := ReadFasta(c.Fasta)
	if err != nil {
		return err
	}

	tiled := TileSequence(pool, seq, c.Kmers.KmerSize, 0)
	probes := ProbesFromTiles(tiled)
	stderr.Printf("tiled %d distinct %d-mers from %s", len(probes), c.Kmers.KmerSize, c.Fasta)

	var genes []GeneProbes
	for _, gene := range c.Genes {
		start, end, strand, err := GeneCoords(c.Annotation, gene)
		if errors.Is(err, ErrGeneNotFound) {
			stderr.Printf("gene %s not found in %s", gene, c.Annotation)
			continue
		}
		if err != nil {
			return err
		}

		strict := !c.Kmers.AllowOutside
		inRegion := FilterByRegion(probes, start, end, strict)
		if len(inRegion) == 0 {
			stderr.Printf("no probes uniquely found in gene %s %d:%d", gene, start, end)
			continue
		}

		g := GeneProbes{
			Gene:   gene,
			Start:  start,
			End:    end,
			Strand: strand,
			Probes: inRegion,
		}
		genes = append(genes, g.Oriented())
	}

	return finishProbeSets(pool, genes, c)
}

// DesignFromGraph designs probes for every core segment of a reference
// graph. Each selected segment is tiled at its own graph offset and
// becomes its own probe set, named after the segment.
func DesignFromGraph(c config.Config) error {
	pool := NewPool(c.Threads)

	graph, err := ParseGFA(c.GFA)
	if err != nil {
		return err
	}

	strategy := SelectCoreStrategy(graph)
	core := strategy.CoreSegments(graph)
	stderr.Printf("identified %d core segments", len(core))

	var genes []GeneProbes
	total := 0
	for _, id := range core {
		seg := graph.Segments[id]
		if seg == nil {
			continue
		}

		tiled := TileSequence(pool, seg.Seq, c.Kmers.KmerSize, seg.Offset)
		if len(tiled) == 0 {
			continue // segment shorter than a probe
		}
		total += len(tiled)

		genes = append(genes, GeneProbes{
			Gene:   id,
			Start:  seg.Offset + 1,
			End:    seg.Offset + len(seg.Seq),
			Strand: "+",
			Probes: ProbesFromTiles(tiled),
		})
	}

	avg := 0.0
	if len(genes) > 0 {
		avg = float64(total) / float64(len(genes))
	}
	stderr.Printf("generated k-mers for %d segments (total: %d, avg per segment: %.2f)",
		len(genes), total, avg)

	return finishProbeSets(pool, genes, c)
}

// finishProbeSets runs the stages shared by both design modes: quality
// filtering, optional ranking, off-target screening, and the report.
func finishProbeSets(pool *Pool, genes []GeneProbes, c config.Config) error {
	bounds := QualityBounds{
		MinGC:  c.Kmers.MinGC,
		MaxGC:  c.Kmers.MaxGC,
		SkipGC: c.Kmers.SkipGC,
	}
	if c.Kmers.CenterBase != "" {
		bounds.CenterBase = c.Kmers.CenterBase[0]
	}

	filtered := []GeneProbes{}
	for _, g := range genes {
		g = g.FilterQuality(pool, bounds)
		if len(g.Probes) == 0 {
			stderr.Printf("no probes passed quality filtering for %s", g.Gene)
			continue
		}
		if c.Kmers.Probes > 0 {
			g = g.Best(c.Kmers.Probes)
		}
		filtered = append(filtered, g)
	}

	if c.OffTargetDir != "" {
		screened, err := QueryIndexes(pool, c.OffTargetDir, filtered, c.Kmers.KmerSize, c.MaxHits, c.Recursive)
		if err != nil {
			return fmt.Errorf("off-target query failed: %w", err)
		}
		filtered = screened
	} else {
		stderr.Printf("skipping off-target check: no off-target directory provided")
	}

	if len(filtered) == 0 {
		stderr.Printf("warning: no probes survived filtering - nothing to report")
		return nil
	}

	return WriteProbes(filtered, ReportPath(c.Out), c.Kmers.KmerSize, c.Verbose)
}
