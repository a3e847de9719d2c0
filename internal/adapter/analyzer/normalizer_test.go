package analyzer

import (
	"errors"
	"testing"

	"asvsearch/internal/domain"
)

func TestNormalizer_Uppercase(t *testing.T) {
	n := NewNormalizer(6)

	got, err := n.Normalize("atcgat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ATCGAT" {
		t.Errorf("expected ATCGAT, got %s", got)
	}
}

func TestNormalizer_AmbiguousBases(t *testing.T) {
	n := NewNormalizer(6)

	tests := []struct {
		input    string
		expected string
	}{
		{"ATCGNT", "ATCGAT"},
		{"NNNNNN", "AAAAAA"},
		{"ATCGRY", "ATCGAA"},
		{"atcg-t", "ATCGAT"},
	}

	for _, tt := range tests {
		got, err := n.Normalize(tt.input)
		if err != nil {
			t.Errorf("Normalize(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizer_TooShort(t *testing.T) {
	n := NewNormalizer(6)

	_, err := n.Normalize("ATCGA")
	if err == nil {
		t.Fatal("expected error for 5-base sequence")
	}

	var invalidErr *domain.InvalidSequenceError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidSequenceError, got %T", err)
	}
	if invalidErr.Length != 5 {
		t.Errorf("expected reported length 5, got %d", invalidErr.Length)
	}
	if invalidErr.MinimumLength != 6 {
		t.Errorf("expected minimum length 6, got %d", invalidErr.MinimumLength)
	}
}

func TestNormalizer_EmptyInput(t *testing.T) {
	n := NewNormalizer(6)

	_, err := n.Normalize("")
	if err == nil {
		t.Error("expected error for empty sequence")
	}
}

func TestNormalizer_ExactMinimum(t *testing.T) {
	n := NewNormalizer(6)

	got, err := n.Normalize("ATCGAT")
	if err != nil {
		t.Fatalf("unexpected error for 6-base sequence: %v", err)
	}
	if got != "ATCGAT" {
		t.Errorf("expected ATCGAT, got %s", got)
	}
}
