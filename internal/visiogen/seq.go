package visiogen

import (
	"io"
	"log"
	"os"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// SetLogOutput redirects the package's run log, e.g. to a MultiWriter
// that tees it into a log file.
func SetLogOutput(w io.Writer) {
	stderr.SetOutput(w)
}

var complementTable = [256]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'a': 't', 't': 'a', 'g': 'c', 'c': 'g',
	'N': 'N', 'n': 'n',
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Bases without a complement (IUPAC ambiguity codes, gaps) map to 'N'.
func ReverseComplement(seq string) string {
	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := complementTable[seq[i]]
		if c == 0 {
			c = 'N'
		}
		rc[len(seq)-1-i] = c
	}
	return string(rc)
}

// Canonical returns whichever of a k-mer or its reverse complement sorts
// first, so both strands map to one index entry.
func Canonical(kmer string) string {
	rc := ReverseComplement(kmer)
	if rc < kmer {
		return rc
	}
	return kmer
}

// gcPercent is the truncated GC percentage of a sequence: gc*100/len.
func gcPercent(seq string) int {
	if len(seq) == 0 {
		return 0
	}

	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'g', 'C', 'c':
			gc++
		}
	}
	return gc * 100 / len(seq)
}
