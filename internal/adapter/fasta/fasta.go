package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"asvsearch/internal/domain"
)

// Parse reads FASTA records from r. Header lines start with ">"; the first
// whitespace-delimited field of the header becomes the record ID. Sequence
// bodies may span multiple lines.
func Parse(r io.Reader) ([]domain.FastaRecord, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var records []domain.FastaRecord
	var header string
	var seq strings.Builder
	started := false

	emit := func() {
		if !started {
			return
		}
		records = append(records, domain.FastaRecord{
			ID:       recordID(header),
			Sequence: seq.String(),
		})
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			emit()
			header = strings.TrimSpace(line[1:])
			started = true
			continue
		}
		if line != "" && started {
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan fasta: %w", err)
	}
	emit()

	if len(records) == 0 {
		return nil, fmt.Errorf("no sequences found in FASTA input")
	}
	return records, nil
}

// ParseString parses FASTA records from an in-memory string.
func ParseString(content string) ([]domain.FastaRecord, error) {
	return Parse(strings.NewReader(content))
}

// ParseFile parses FASTA records from a file on disk.
func ParseFile(path string) ([]domain.FastaRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func recordID(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LoadTaxonomy reads a sequence-id to taxonomy-string mapping from a YAML
// file. Used when building a reference database from unlabeled FASTA files.
func LoadTaxonomy(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	mapping := make(map[string]string)
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}
	return mapping, nil
}
