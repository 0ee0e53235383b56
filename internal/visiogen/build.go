package visiogen

import (
	"fmt"
	"strings"

	"github.com/cheggaaa/pb/v3"
)

// BuildIndexes builds one membership index per FASTA file in dir and
// writes each shard next to its source with the .vidx extension. Files
// build independently across the pool; a file that fails to parse or
// write is logged and skipped, the batch continues. Identical input and
// settings produce byte-identical shards.
func BuildIndexes(pool *Pool, dir string, k int, canonical, recursive bool) error {
	fastas, err := FindFiles(dir, []string{"fa", "fasta"}, recursive)
	if err != nil {
		return err
	}
	if len(fastas) == 0 {
		stderr.Printf("no FASTA files found in %s", dir)
		return nil
	}

	stderr.Printf("found %d FASTA files to index", len(fastas))
	bar := pb.StartNew(len(fastas))
	defer bar.Finish()

	pool.Each(len(fastas), func(i int) {
		defer bar.Increment()

		if err := buildIndex(fastas[i], k, canonical); err != nil {
			stderr.Printf("error indexing %s: %v", fastas[i], err)
		}
	})

	return nil
}

func buildIndex(fasta string, k int, canonical bool) error {
	records, err := ReadFastaRecords(fasta)
	if err != nil {
		return err
	}

	index := NewIndex(k, canonical)
	for _, rec := range records {
		index.InsertSequence(rec.Seq)
	}

	mode := ""
	if canonical {
		mode = "canonical "
	}
	stderr.Printf("%s contains %d %s%d-mers", fasta, index.Len(), mode, k)

	return index.WriteFile(indexPath(fasta))
}

// indexPath is the shard path for a FASTA source: the source path with
// its extension swapped for .vidx.
func indexPath(fasta string) string {
	base := strings.TrimSuffix(fasta, ".gz")
	if dot := strings.LastIndex(base, "."); dot > 0 {
		base = base[:dot]
	}
	return base + IndexExt
}

// RequireDir errors when a cross-cutting directory argument was not
// supplied. Checked before any work begins.
func RequireDir(dir, purpose string) error {
	if dir == "" {
		return fmt.Errorf("an off-target directory is required for %s", purpose)
	}
	return nil
}
