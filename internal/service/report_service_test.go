package service

import (
	"strings"
	"testing"
	"time"

	"keude/internal/ledger"
	"keude/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reportFixture() ReportService {
	txs := []model.Transaction{
		{Date: day(2025, 6, 10), Type: model.TxIncome, Status: model.StatusLunas, Category: "Pendapatan Jasa", Amount: 5000000},
		{Date: day(2025, 7, 5), Type: model.TxIncome, Status: model.StatusLunas, Category: "Pendapatan Proyek", Amount: 2000000},
		{Date: day(2025, 7, 12), Type: model.TxExpense, Status: model.StatusLunas, Category: "Operasional", Amount: 800000},
		{Date: day(2025, 7, 20), Type: model.TxTax, Status: model.StatusLunas, Category: "Pajak", Amount: 200000},
		{Date: day(2025, 7, 25), Type: model.TxExpense, Status: model.StatusLunas, Category: "Tabungan Karyawan", Amount: 100000},
		{Date: day(2025, 8, 1), Type: model.TxIncome, Status: model.StatusBelumBayar, Category: "Pendapatan Jasa", Amount: 900000},
	}
	return NewReportService(&fakeTransactionRepo{txs: txs})
}

func TestGetCashFlowOpeningBalance(t *testing.T) {
	svc := reportFixture()

	flow, err := svc.GetCashFlow("2025-07")
	if err != nil {
		t.Fatalf("GetCashFlow: %v", err)
	}
	// June: +5,000,000. July operating: 2,000,000 - 900,000 - 200,000.
	if flow.OpeningBalance != 5000000 {
		t.Errorf("opening = %v, want 5000000", flow.OpeningBalance)
	}
	if flow.Operating != 900000 {
		t.Errorf("operating = %v, want 900000", flow.Operating)
	}
	if flow.ClosingBalance != 5900000 {
		t.Errorf("closing = %v, want 5900000", flow.ClosingBalance)
	}
}

func TestGetCashFlowBadMonth(t *testing.T) {
	svc := reportFixture()

	if _, err := svc.GetCashFlow("agustus"); err != ErrInvalidMonth {
		t.Errorf("err = %v, want ErrInvalidMonth", err)
	}
}

func TestGetSummaryRangeAndSavings(t *testing.T) {
	svc := reportFixture()

	summary, err := svc.GetSummary(day(2025, 7, 1), day(2025, 7, 31))
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.Income != 2000000 {
		t.Errorf("income = %v, want 2000000", summary.Income)
	}
	if summary.Expense != 900000 {
		t.Errorf("expense = %v, want 900000", summary.Expense)
	}
	if summary.Tax != 200000 {
		t.Errorf("tax = %v, want 200000", summary.Tax)
	}
	if summary.Savings != 100000 {
		t.Errorf("savings = %v, want 100000", summary.Savings)
	}
	if len(summary.Transactions) != 4 {
		t.Errorf("transactions = %d, want 4", len(summary.Transactions))
	}
	if len(summary.Series) != 1 || summary.Series[0].Key != "2025-07" {
		t.Errorf("series = %+v", summary.Series)
	}
}

func TestGetBalanceSheetSplitsOutstanding(t *testing.T) {
	svc := reportFixture()

	sheet, err := svc.GetBalanceSheet(day(2025, 8, 31))
	if err != nil {
		t.Fatalf("GetBalanceSheet: %v", err)
	}
	// Paid cash: 7,000,000 income - 900,000 expense - 200,000 tax.
	if sheet.Cash != 5900000 {
		t.Errorf("cash = %v, want 5900000", sheet.Cash)
	}
	if sheet.Receivable != 900000 {
		t.Errorf("receivable = %v, want 900000", sheet.Receivable)
	}
	if sheet.TotalAssets != 6800000 {
		t.Errorf("assets = %v, want 6800000", sheet.TotalAssets)
	}
	if sheet.Debt != 0 {
		t.Errorf("debt = %v, want 0", sheet.Debt)
	}
	if sheet.Equity != sheet.TotalAssets-sheet.Debt {
		t.Errorf("equity = %v", sheet.Equity)
	}
}

func TestExportCSVHasHeaderAndRows(t *testing.T) {
	svc := reportFixture()

	csv, err := svc.ExportCSV(day(2025, 7, 1), day(2025, 7, 31))
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if lines[0] != strings.Join(ledger.CSVHeader, ",") {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 5 {
		t.Errorf("lines = %d, want header + 4 rows", len(lines))
	}
}

func TestGetProjectionDefaultsHorizon(t *testing.T) {
	svc := reportFixture()

	projection, err := svc.GetProjection(0)
	if err != nil {
		t.Fatalf("GetProjection: %v", err)
	}
	if len(projection.Points) != 3 {
		t.Errorf("points = %d, want default horizon of 3", len(projection.Points))
	}
}

func TestGetDashboardStatsRecentCapped(t *testing.T) {
	svc := reportFixture()

	resp, err := svc.GetDashboardStats()
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if len(resp.Recent) != 5 {
		t.Errorf("recent = %d, want 5", len(resp.Recent))
	}
	if len(resp.Series) != 6 {
		t.Errorf("series = %d, want 6 trailing months", len(resp.Series))
	}
	if resp.Stats.Receivable != 900000 {
		t.Errorf("receivable = %v, want 900000", resp.Stats.Receivable)
	}
}

func TestExportXLSXBuildsWorkbook(t *testing.T) {
	svc := reportFixture()

	buf, err := svc.ExportXLSX(day(2025, 7, 1), day(2025, 7, 31))
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("workbook buffer is empty")
	}
	// XLSX is a zip container; check the magic bytes.
	head := buf.Bytes()[:2]
	if head[0] != 'P' || head[1] != 'K' {
		t.Errorf("unexpected magic bytes %q", head)
	}
}
