package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"keude/internal/ledger"
	"keude/internal/model"
	"keude/internal/repository"
)

var ErrInvalidMonth = errors.New("invalid month format, expected YYYY-MM")

type ReportService interface {
	GetDashboardStats() (*DashboardResponse, error)
	GetProjection(horizon int) (*ledger.Projection, error)
	GetSummary(start, end time.Time) (*SummaryResponse, error)
	GetIncomeStatement(month string) (*ledger.IncomeStatement, error)
	GetCashFlow(month string) (*ledger.CashFlow, error)
	GetBalanceSheet(date time.Time) (*BalanceSheet, error)
	ExportCSV(start, end time.Time) (string, error)
	ExportXLSX(start, end time.Time) (*bytes.Buffer, error)
}

// DashboardResponse pairs the headline figures with the latest entries.
type DashboardResponse struct {
	Stats  ledger.DashboardStats       `json:"stats"`
	Series []ledger.MonthPoint         `json:"series"`
	Recent []model.TransactionResponse `json:"recent"`
}

type SummaryResponse struct {
	Income       float64                     `json:"income"`
	Expense      float64                     `json:"expense"`
	Tax          float64                     `json:"tax"`
	Savings      float64                     `json:"savings"`
	NetProfit    float64                     `json:"net_profit"`
	Series       []ledger.MonthPoint         `json:"series"`
	Transactions []model.TransactionResponse `json:"transactions"`
}

// BalanceSheet is the point-in-time neraca: cash plus outstanding
// receivables on one side, unpaid obligations and the remainder as
// equity on the other.
type BalanceSheet struct {
	Cash        float64 `json:"cash"`
	Receivable  float64 `json:"receivable"`
	TotalAssets float64 `json:"total_assets"`
	Debt        float64 `json:"debt"`
	Equity      float64 `json:"equity"`
}

type reportService struct {
	txRepo repository.TransactionRepository
}

func NewReportService(txRepo repository.TransactionRepository) ReportService {
	return &reportService{txRepo: txRepo}
}

func (s *reportService) GetDashboardStats() (*DashboardResponse, error) {
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}

	recent := make([]model.TransactionResponse, 0, 5)
	for i := range txs {
		if len(recent) == 5 {
			break
		}
		recent = append(recent, txs[i].ToResponse())
	}

	return &DashboardResponse{
		Stats:  ledger.ComputeDashboardStats(txs),
		Series: ledger.TrailingSeries(txs, time.Now(), 6),
		Recent: recent,
	}, nil
}

func (s *reportService) GetProjection(horizon int) (*ledger.Projection, error) {
	if horizon <= 0 {
		horizon = 3
	}
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	series := ledger.TrailingSeries(txs, time.Now(), 6)
	projection := ledger.LinearTrendProjection(series, horizon)
	return &projection, nil
}

func (s *reportService) GetSummary(start, end time.Time) (*SummaryResponse, error) {
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	filtered := ledger.FilterByDateRange(txs, start, end)

	responses := make([]model.TransactionResponse, len(filtered))
	for i := range filtered {
		responses[i] = filtered[i].ToResponse()
	}

	statement := ledger.ComputeIncomeStatement(filtered)
	return &SummaryResponse{
		Income:       statement.Revenue,
		Expense:      statement.Expense,
		Tax:          statement.Tax,
		Savings:      ledger.TotalByCategories(filtered, "Tabungan Karyawan", "Simpanan Wajib"),
		NetProfit:    statement.NetProfit,
		Series:       ledger.MonthlySeries(filtered),
		Transactions: responses,
	}, nil
}

// monthRange expands "2006-01" into the first instant of the month and the
// first instant of the next one; the ledger filter treats the end bound
// inclusively at day precision, so the end passed on is the month's last day.
func monthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

func (s *reportService) GetIncomeStatement(month string) (*ledger.IncomeStatement, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	statement := ledger.ComputeIncomeStatement(ledger.FilterByDateRange(txs, start, end))
	return &statement, nil
}

func (s *reportService) GetCashFlow(month string) (*ledger.CashFlow, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}

	opening := ledger.CashBalance(txs, start.AddDate(0, 0, -1))
	flow := ledger.ComputeCashFlow(ledger.FilterByDateRange(txs, start, end), opening)
	return &flow, nil
}

func (s *reportService) GetBalanceSheet(date time.Time) (*BalanceSheet, error) {
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}

	until := ledger.FilterByDateRange(txs, time.Time{}, date)
	paid := []model.TransactionStatus{model.StatusLunas}
	outstanding := []model.TransactionStatus{model.StatusBelumBayar, model.StatusMenunggu}

	cash := ledger.TotalByTypeAndStatus(until, model.TxIncome, paid) -
		ledger.TotalByTypeAndStatus(until, model.TxExpense, paid) -
		ledger.TotalByTypeAndStatus(until, model.TxTax, paid)
	receivable := ledger.TotalByTypeAndStatus(until, model.TxIncome, outstanding)
	debt := ledger.TotalByTypeAndStatus(until, model.TxExpense, outstanding) +
		ledger.TotalByTypeAndStatus(until, model.TxTax, outstanding)

	return &BalanceSheet{
		Cash:        cash,
		Receivable:  receivable,
		TotalAssets: cash + receivable,
		Debt:        debt,
		Equity:      cash + receivable - debt,
	}, nil
}

func (s *reportService) filteredRange(start, end time.Time) ([]model.Transaction, error) {
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return ledger.FilterByDateRange(txs, start, end), nil
}

func (s *reportService) ExportCSV(start, end time.Time) (string, error) {
	filtered, err := s.filteredRange(start, end)
	if err != nil {
		return "", err
	}
	return ledger.ExportCSV(filtered), nil
}

// ExportXLSX renders the same rows as the CSV export into a styled sheet
// with a totals footer.
func (s *reportService) ExportXLSX(start, end time.Time) (*bytes.Buffer, error) {
	filtered, err := s.filteredRange(start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Laporan"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Tanggal", "Kategori", "Deskripsi", "Status", "Nominal", "Tipe"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)

	for i, tx := range filtered {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tx.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tx.Category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), tx.Description)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(tx.Status))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tx.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(tx.Type))
	}

	statement := ledger.ComputeIncomeStatement(filtered)
	footer := len(filtered) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footer), "Pemasukan")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", footer), statement.Revenue)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footer+1), "Beban (termasuk pajak)")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", footer+1), statement.TotalExpense)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footer+2), "Laba Bersih")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", footer+2), statement.NetProfit)

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "C", 28)
	f.SetColWidth(sheet, "D", "F", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.New("failed to build workbook")
	}
	return buf, nil
}
