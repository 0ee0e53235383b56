package visiogen

import (
	"sort"
	"strings"

	"github.com/cheggaaa/pb/v3"
)

// QueryIndexes tests every distinct k-mer of every probe set against the
// index shards in dir and drops the probe sets whose k-mers are all too
// common. A probe set survives when at least one of its probes has a
// k-mer found in at most maxHits shards; a k-mer absent from every shard
// has zero hits and always passes its own test.
//
// Shards are queried independently across the pool, each worker filling
// its own hit map, and the partial maps are folded together in shard
// order afterwards, so aggregation needs no locking and the merged hit
// lists are deterministic. A shard that fails to load or was built at a
// different width is logged and skipped; its hits are simply absent.
func QueryIndexes(pool *Pool, dir string, genes []GeneProbes, k, maxHits int, recursive bool) ([]GeneProbes, error) {
	shards, err := FindFiles(dir, []string{strings.TrimPrefix(IndexExt, ".")}, recursive)
	if err != nil {
		return nil, err
	}
	if len(shards) == 0 {
		stderr.Printf("no %s index files found in %s", IndexExt, dir)
		return genes, nil
	}

	stderr.Printf("found %d index files to search", len(shards))

	kmers := distinctKmers(genes)
	stderr.Printf("querying %d distinct k-mers", len(kmers))

	bar := pb.StartNew(len(shards))
	partials := make([]map[string]bool, len(shards))

	pool.Each(len(shards), func(i int) {
		defer bar.Increment()

		index, err := ReadIndexFile(shards[i])
		if err != nil {
			stderr.Printf("error querying %s: %v", shards[i], err)
			return
		}
		if err := index.CheckWidth(k); err != nil {
			stderr.Printf("skipping %s: %v", shards[i], err)
			return
		}

		found := make(map[string]bool)
		for _, kmer := range kmers {
			if index.Contains(kmer) {
				found[kmer] = true
			}
		}
		partials[i] = found
	})
	bar.Finish()

	// fold the per-shard results in shard order
	hits := make(map[string][]string)
	for i, found := range partials {
		for kmer := range found {
			hits[kmer] = append(hits[kmer], shards[i])
		}
	}
	for kmer := range hits {
		sort.Strings(hits[kmer])
	}

	kept := []GeneProbes{}
	missed := 0
	for _, kmer := range kmers {
		if len(hits[kmer]) == 0 {
			missed++
		}
	}
	for _, g := range genes {
		g.Hits = geneHits(g, hits)
		if survives(g, hits, maxHits) {
			kept = append(kept, g)
		}
	}

	stderr.Printf("%d of %d k-mers had no hits in any index", missed, len(kmers))
	if len(kept) == 0 {
		stderr.Printf("warning: every probe exceeded %d off-target hits - nothing to report", maxHits)
	}

	return kept, nil
}

// survives applies the any-k-mer-passes retention rule: one probe k-mer
// within the hit budget is enough to keep the whole set. Intentionally
// permissive; a set with one ubiquitous k-mer and one clean k-mer stays.
func survives(g GeneProbes, hits map[string][]string, maxHits int) bool {
	for _, p := range g.Probes {
		if len(hits[p.Kmer]) <= maxHits {
			return true
		}
	}
	return false
}

func geneHits(g GeneProbes, hits map[string][]string) map[string][]string {
	mine := make(map[string][]string)
	for _, p := range g.Probes {
		if shards, ok := hits[p.Kmer]; ok {
			mine[p.Kmer] = shards
		}
	}
	return mine
}

func distinctKmers(genes []GeneProbes) []string {
	seen := make(map[string]bool)
	var kmers []string
	for _, g := range genes {
		for _, p := range g.Probes {
			if !seen[p.Kmer] {
				seen[p.Kmer] = true
				kmers = append(kmers, p.Kmer)
			}
		}
	}
	sort.Strings(kmers)
	return kmers
}
