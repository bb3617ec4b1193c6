package export

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	req := PDFRequest{
		Destination: "Itália",
		DateRange:   "15/08 a 30/08",
		Budget:      "R$15.000,00",
		Table:       sampleTable(),
		Narrative:   "Roma é imperdível.\nReserve o Vaticano com antecedência.",
		SessionID:   "987654321",
	}
	path, err := WritePDF(req, dir)
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	base := strings.TrimPrefix(path, dir+string(os.PathSeparator))
	if !strings.HasPrefix(base, "roteiro_italia_987654_") || !strings.HasSuffix(base, ".pdf") {
		t.Errorf("unexpected filename: %s", base)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat pdf: %v", err)
	}
	if info.Size() == 0 {
		t.Error("pdf file is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output is not a PDF document")
	}
}

func TestWritePDFEmptyTable(t *testing.T) {
	req := PDFRequest{
		Destination: "Itália",
		DateRange:   "15/08 a 30/08",
		SessionID:   "abc",
	}
	_, err := WritePDF(req, t.TempDir())
	if !errors.Is(err, ErrEmptyItinerary) {
		t.Fatalf("expected ErrEmptyItinerary, got %v", err)
	}
}

func TestWritePDFMissingFields(t *testing.T) {
	req := PDFRequest{Table: sampleTable(), SessionID: "abc"}
	if _, err := WritePDF(req, t.TempDir()); err == nil {
		t.Fatal("expected error for missing destination and dates")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Itália", "italia"},
		{"Reino Unido", "reino_unido"},
		{"França!!", "franca"},
		{"???", "viagem"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
