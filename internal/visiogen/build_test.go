package visiogen

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_BuildIndexes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "source1.fasta"), ">chr1\nACGTACGTAC\n")
	writeFile(t, filepath.Join(dir, "source2.fa"), ">chr2\nTTTTGGGGCC\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a fasta\n")

	pool := NewPool(2)
	if err := BuildIndexes(pool, dir, 4, false, false); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"source1" + IndexExt, "source2" + IndexExt} {
		x, err := ReadIndexFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("shard %s not built: %v", name, err)
		}
		if x.K() != 4 {
			t.Errorf("shard %s built at k=%d, want 4", name, x.K())
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "notes"+IndexExt)); err == nil {
		t.Error("a non-FASTA file was indexed")
	}
}

func Test_BuildIndexes_badFileSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.fasta"), ">ok\nACGTACGT\n")
	writeFile(t, filepath.Join(dir, "bad.fasta"), "ACGT without a header\n")

	pool := NewPool(2)
	if err := BuildIndexes(pool, dir, 4, false, false); err != nil {
		t.Fatal(err)
	}

	// the malformed file aborts only its own build
	if _, err := ReadIndexFile(filepath.Join(dir, "good"+IndexExt)); err != nil {
		t.Errorf("good shard missing after a sibling failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad"+IndexExt)); err == nil {
		t.Error("a shard was written for the malformed FASTA")
	}
}

func Test_BuildIndexes_recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(sub, "deep.fasta"), ">deep\nACGTACGT\n")

	pool := NewPool(1)

	if err := BuildIndexes(pool, dir, 4, false, false); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(sub, "deep"+IndexExt)); err == nil {
		t.Error("non-recursive build descended into a subdirectory")
	}

	if err := BuildIndexes(pool, dir, 4, false, true); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(sub, "deep"+IndexExt)); err != nil {
		t.Error("recursive build missed a nested FASTA")
	}
}

func Test_RequireDir(t *testing.T) {
	if err := RequireDir("", "testing"); err == nil {
		t.Error("an empty directory argument must be an error")
	}
	if err := RequireDir("/tmp", "testing"); err != nil {
		t.Errorf("a set directory argument errored: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
