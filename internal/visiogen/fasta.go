package visiogen

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// FastaRecord is one sequence read from a FASTA file.
type FastaRecord struct {
	ID  string
	Seq string
}

// ReadFasta reads the single sequence in a FASTA file. Zero records or
// more than one record is an error: the probe target must be unambiguous.
func ReadFasta(path string) (string, error) {
	records, err := ReadFastaRecords(path)
	if err != nil {
		return "", err
	}

	if len(records) == 0 {
		return "", fmt.Errorf("no sequence found in %s", path)
	}
	if len(records) > 1 {
		return "", fmt.Errorf("%d sequences found in %s: multi-FASTA targets are unsupported", len(records), path)
	}
	return records[0].Seq, nil
}

// ReadFastaRecords reads every record in a FASTA file. Files ending in
// .gz are decompressed on the fly.
func ReadFastaRecords(path string) ([]FastaRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read gzip FASTA %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	var records []FastaRecord
	var id string
	var seq strings.Builder

	flush := func() {
		if id != "" || seq.Len() > 0 {
			records = append(records, FastaRecord{ID: id, Seq: seq.String()})
		}
		seq.Reset()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			flush()
			id = "unnamed"
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				id = fields[0]
			}
			continue
		}

		if id == "" {
			return nil, fmt.Errorf("%s: sequence data before first FASTA header", path)
		}
		seq.WriteString(strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	flush()

	return records, nil
}
