package visiogen

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrGeneNotFound marks a gene name absent from the annotation. Callers
// treat it per-gene: warn and continue with the remaining genes.
var ErrGeneNotFound = errors.New("gene not found in annotation")

// GeneCoords scans a GFF3 annotation for the feature whose Name attribute
// matches gene and returns its 1-based inclusive coordinates and strand.
// Unparseable records are skipped; an unmatched gene returns ErrGeneNotFound.
func GeneCoords(path, gene string) (start, end int, strand string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to open annotation %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 9 {
			continue
		}

		if attributeValue(cols[8], "Name") != gene {
			continue
		}

		start, serr := strconv.Atoi(cols[3])
		end, eerr := strconv.Atoi(cols[4])
		if serr != nil || eerr != nil {
			continue
		}

		strand := cols[6]
		if strand != "-" {
			strand = "+"
		}
		return start, end, strand, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, "", fmt.Errorf("failed to read annotation %s: %w", path, err)
	}

	return 0, 0, "", fmt.Errorf("%q: %w", gene, ErrGeneNotFound)
}

// attributeValue pulls one key's value out of a GFF3 attribute column
// (semicolon-separated key=value pairs).
func attributeValue(attributes, key string) string {
	for _, kv := range strings.Split(attributes, ";") {
		kv = strings.TrimSpace(kv)
		if v, ok := strings.CutPrefix(kv, key+"="); ok {
			return v
		}
	}
	return ""
}
