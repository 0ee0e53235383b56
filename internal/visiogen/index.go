package visiogen

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"sort"
)

// IndexExt is the extension of a persisted off-target index shard.
const IndexExt = ".vidx"

// Index is an exact-membership structure over the k-mers of one off-target
// source. In canonical mode a k-mer and its reverse complement share one
// entry. Immutable once built and written.
type Index struct {
	k         int
	canonical bool
	members   map[string]bool
}

// NewIndex returns an empty index of the passed k-mer width.
func NewIndex(k int, canonical bool) *Index {
	return &Index{
		k:         k,
		canonical: canonical,
		members:   make(map[string]bool),
	}
}

// K is the width the index was built at.
func (x *Index) K() int { return x.k }

// IsCanonical reports whether the index collapses reverse complements.
func (x *Index) IsCanonical() bool { return x.canonical }

// Len is the number of distinct members.
func (x *Index) Len() int { return len(x.members) }

// InsertSequence adds every k-mer of a sequence. Windows containing a
// base other than A/C/G/T are skipped.
func (x *Index) InsertSequence(seq string) {
	for i := 0; i+x.k <= len(seq); i++ {
		kmer := seq[i : i+x.k]
		if !cleanDNA(kmer) {
			continue
		}
		if x.canonical {
			kmer = Canonical(kmer)
		}
		x.members[kmer] = true
	}
}

// Contains tests a k-mer for membership using the index's own
// canonicalization mode. The k-mer must match the index width; see
// CheckWidth.
func (x *Index) Contains(kmer string) bool {
	if x.canonical {
		kmer = Canonical(kmer)
	}
	return x.members[kmer]
}

// CheckWidth returns an error when a query width does not match the width
// the index was built at. Testing mismatched widths would silently answer
// wrong, so callers must check first.
func (x *Index) CheckWidth(k int) error {
	if k != x.k {
		return fmt.Errorf("index was built at k=%d, queried at k=%d", x.k, k)
	}
	return nil
}

func cleanDNA(seq string) bool {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// indexFile is the serialized form of an Index. Members are sorted so the
// written bytes are deterministic for identical input.
type indexFile struct {
	K         int
	Canonical bool
	Members   []string
}

// WriteFile persists the index as gob inside gzip. The write happens
// exactly once per source file; shards are never modified in place.
func (x *Index) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", path, err)
	}
	defer f.Close()

	members := make([]string, 0, len(x.members))
	for kmer := range x.members {
		members = append(members, kmer)
	}
	sort.Strings(members)

	gz := gzip.NewWriter(f)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(indexFile{K: x.k, Canonical: x.canonical, Members: members}); err != nil {
		return fmt.Errorf("failed to encode index %s: %w", path, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to flush index %s: %w", path, err)
	}
	return nil
}

// ReadIndexFile loads a shard written by WriteFile and reproduces its
// membership answers exactly.
func ReadIndexFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", path, err)
	}
	defer gz.Close()

	var file indexFile
	if err := gob.NewDecoder(gz).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode index %s: %w", path, err)
	}

	x := NewIndex(file.K, file.Canonical)
	for _, kmer := range file.Members {
		x.members[kmer] = true
	}
	return x, nil
}
