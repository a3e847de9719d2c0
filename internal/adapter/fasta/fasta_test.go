package fasta

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_MultipleRecords(t *testing.T) {
	content := `>seq1 some description
ATCGATCG
>seq2
GGCCAATT`

	records, err := ParseString(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "seq1" {
		t.Errorf("expected ID seq1 (description stripped), got %q", records[0].ID)
	}
	if records[0].Sequence != "ATCGATCG" {
		t.Errorf("expected ATCGATCG, got %q", records[0].Sequence)
	}
	if records[1].ID != "seq2" || records[1].Sequence != "GGCCAATT" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestParse_MultiLineSequence(t *testing.T) {
	content := `>seq1
ATCG
ATCG

GGCC`

	records, err := ParseString(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Sequence != "ATCGATCGGGCC" {
		t.Errorf("expected joined sequence ATCGATCGGGCC, got %q", records[0].Sequence)
	}
}

func TestParse_TrailingRecordEmitted(t *testing.T) {
	records, err := ParseString(">only\nATCGATCG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "only" {
		t.Errorf("last record not emitted: %+v", records)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := ParseString(""); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ParseString("ATCG\nGGCC"); err == nil {
		t.Error("expected error for input without headers")
	}
}

func TestParse_EmptyBodyRecord(t *testing.T) {
	records, err := ParseString(">a\n\n>b\nATCG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Sequence != "" {
		t.Errorf("expected empty sequence for record a, got %q", records[0].Sequence)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.fasta")
	if err := os.WriteFile(path, []byte(">r1\nATCGATCG\n"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "r1" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestLoadTaxonomy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	content := `r1: Bacteria;Proteobacteria
r2: Bacteria;Firmicutes
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	mapping, err := LoadTaxonomy(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mapping["r1"] != "Bacteria;Proteobacteria" {
		t.Errorf("unexpected taxonomy for r1: %q", mapping["r1"])
	}
	if len(mapping) != 2 {
		t.Errorf("expected 2 entries, got %d", len(mapping))
	}
}
