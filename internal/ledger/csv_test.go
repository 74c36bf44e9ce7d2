package ledger

import (
	"strings"
	"testing"

	"keude/internal/model"
)

func TestCSVRoundTrip(t *testing.T) {
	original := []model.Transaction{
		tx("2025-01-10", model.TxIncome, model.StatusLunas, "Pendapatan Jasa", 1500000),
		tx("2025-01-15", model.TxExpense, model.StatusBelumBayar, "Operasional, Kantor", 250000),
		tx("2025-02-01", model.TxTax, model.StatusLunas, `PPh "final"`, 100000),
		tx("2025-02-05", model.TxExpense, model.StatusMenunggu, "", 0),
	}

	out := ExportCSV(original)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("export has %d lines, want header + 4 rows", len(lines))
	}
	if lines[0] != "Tanggal,Kategori,Deskripsi,Status,Nominal,Tipe" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `2025-01-10,"Pendapatan Jasa","",Lunas,1500000,income` {
		t.Errorf("row 1 = %q", lines[1])
	}

	parsed, err := ParseCSV(out)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(parsed) != len(original) {
		t.Fatalf("parsed %d rows, want %d", len(parsed), len(original))
	}
	for i := range original {
		want, got := original[i], parsed[i]
		if !got.Date.Equal(want.Date) || got.Category != want.Category ||
			got.Description != want.Description || got.Status != want.Status ||
			got.Amount != want.Amount || got.Type != want.Type {
			t.Errorf("row %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestParseCSVLenient(t *testing.T) {
	// Short rows are skipped, bad amounts degrade to zero.
	data := "Tanggal,Kategori,Deskripsi,Status,Nominal,Tipe\n" +
		"incomplete,row\n" +
		"\n" +
		`2025-03-01,"Ops","catatan",Lunas,notanumber,expense`
	parsed, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("parsed %d rows, want 1", len(parsed))
	}
	if parsed[0].Amount != 0 {
		t.Errorf("bad amount parsed to %v, want 0", parsed[0].Amount)
	}
}

func TestParseCSVBrokenQuoting(t *testing.T) {
	data := "Tanggal,Kategori,Deskripsi,Status,Nominal,Tipe\n" +
		`2025-03-01,"unterminated,desc,Lunas,1,expense`
	if _, err := ParseCSV(data); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

func TestExportCSVEmpty(t *testing.T) {
	if got := ExportCSV(nil); got != "Tanggal,Kategori,Deskripsi,Status,Nominal,Tipe" {
		t.Errorf("empty export = %q", got)
	}
}
