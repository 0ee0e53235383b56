package visiogen

import (
	"path/filepath"
	"testing"
)

// writeShard builds an index over seq and writes it under dir.
func writeShard(t *testing.T, dir, name, seq string, k int) {
	t.Helper()
	x := NewIndex(k, false)
	x.InsertSequence(seq)
	if err := x.WriteFile(filepath.Join(dir, name+IndexExt)); err != nil {
		t.Fatal(err)
	}
}

func geneWith(kmers ...string) GeneProbes {
	g := GeneProbes{Gene: "g1", Strand: "+"}
	for i, kmer := range kmers {
		g.Probes = append(g.Probes, NewProbe(kmer, []int{i * 10}))
	}
	return g
}

func Test_QueryIndexes_zeroHitsSurvive(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, dir, "shard1", "GGGGGGGG", 4)

	pool := NewPool(2)
	genes := []GeneProbes{geneWith("ACTA")} // absent from the shard

	kept, err := QueryIndexes(pool, dir, genes, 4, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 {
		t.Error("a probe with zero hits everywhere must survive any max-hits")
	}
}

func Test_QueryIndexes_anyKmerPasses(t *testing.T) {
	dir := t.TempDir()
	// ACGT is present in both shards; CTAG in neither
	writeShard(t, dir, "shard1", "ACGTT", 4)
	writeShard(t, dir, "shard2", "AACGT", 4)

	pool := NewPool(2)
	genes := []GeneProbes{geneWith("ACGT", "CTAG")}

	// ACGT has 2 hits, over the threshold of 1; CTAG has 0 and passes,
	// which keeps the whole set under the any-kmer-passes rule
	kept, err := QueryIndexes(pool, dir, genes, 4, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 {
		t.Fatal("one passing k-mer must keep the probe set")
	}
	if hits := kept[0].Hits["ACGT"]; len(hits) != 2 {
		t.Errorf("recorded %d hits for ACGT, want 2", len(hits))
	}
}

func Test_QueryIndexes_overThresholdDropped(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, dir, "shard1", "ACGTT", 4)
	writeShard(t, dir, "shard2", "AACGT", 4)

	pool := NewPool(2)
	genes := []GeneProbes{geneWith("ACGT")} // 2 hits, only k-mer

	kept, err := QueryIndexes(pool, dir, genes, 4, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 0 {
		t.Error("a set whose every k-mer exceeds max-hits must be dropped")
	}
}

func Test_QueryIndexes_widthMismatchSkipsShard(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, dir, "narrow", "ACGTACGT", 5) // built at k=5

	pool := NewPool(1)
	genes := []GeneProbes{geneWith("ACGT")}

	// mismatched shard is skipped; with no usable shards the probe has
	// zero hits and survives
	kept, err := QueryIndexes(pool, dir, genes, 4, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 {
		t.Error("a width-mismatched shard must be skipped, not answer wrongly")
	}
	if len(kept[0].Hits) != 0 {
		t.Errorf("skipped shard contributed hits: %v", kept[0].Hits)
	}
}

func Test_QueryIndexes_noShards(t *testing.T) {
	pool := NewPool(1)
	genes := []GeneProbes{geneWith("ACGT")}

	kept, err := QueryIndexes(pool, t.TempDir(), genes, 4, 5, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 {
		t.Error("an empty shard directory must leave the probe sets untouched")
	}
}

func Test_QueryIndexes_deterministicHitOrder(t *testing.T) {
	dir := t.TempDir()
	writeShard(t, dir, "a", "ACGTT", 4)
	writeShard(t, dir, "b", "AACGT", 4)
	writeShard(t, dir, "c", "TACGT", 4)

	pool := NewPool(3)

	first, err := QueryIndexes(pool, dir, []GeneProbes{geneWith("ACGT")}, 4, 5, false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := QueryIndexes(pool, dir, []GeneProbes{geneWith("ACGT")}, 4, 5, false)
		if err != nil {
			t.Fatal(err)
		}
		a, b := first[0].Hits["ACGT"], again[0].Hits["ACGT"]
		if len(a) != 3 || len(b) != 3 {
			t.Fatalf("ACGT hit lists = %v / %v, want 3 shards each", a, b)
		}
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("hit order varies across runs: %v vs %v", a, b)
			}
		}
	}
}
