package ledger

import (
	"math"
	"testing"
	"time"

	"keude/internal/model"
)

func tx(date string, typ model.TransactionType, status model.TransactionStatus, category string, amount float64) model.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{Date: d, Type: typ, Status: status, Category: category, Amount: amount}
}

func TestTotalByTypeAndStatus(t *testing.T) {
	txs := []model.Transaction{
		tx("2025-01-10", model.TxIncome, model.StatusLunas, "Pendapatan Jasa", 1000000),
		tx("2025-01-11", model.TxIncome, model.StatusBelumBayar, "Pendapatan Jasa", 250000),
		tx("2025-01-12", model.TxIncome, model.StatusMenunggu, "Pendapatan Proyek", 150000),
		tx("2025-01-13", model.TxExpense, model.StatusLunas, "Operasional", 400000),
		tx("2025-01-14", model.TxIncome, model.StatusDibatalkan, "Pendapatan Jasa", 9999999),
	}

	paid := []model.TransactionStatus{model.StatusLunas}
	pending := []model.TransactionStatus{model.StatusBelumBayar, model.StatusMenunggu}

	if got := TotalByTypeAndStatus(txs, model.TxIncome, paid); got != 1000000 {
		t.Errorf("paid income = %v, want 1000000", got)
	}
	if got := TotalByTypeAndStatus(txs, model.TxIncome, pending); got != 400000 {
		t.Errorf("pending income = %v, want 400000", got)
	}
	// Empty status filter matches nothing.
	if got := TotalByTypeAndStatus(txs, model.TxIncome, nil); got != 0 {
		t.Errorf("empty status filter = %v, want 0", got)
	}
	if got := TotalByTypeAndStatus(nil, model.TxIncome, paid); got != 0 {
		t.Errorf("empty transactions = %v, want 0", got)
	}
}

func TestTotalByCategoryMatchSalaryScenario(t *testing.T) {
	txs := []model.Transaction{
		tx("2025-02-01", model.TxExpense, model.StatusLunas, "Gaji Karyawan", 5000000),
		tx("2025-02-02", model.TxExpense, model.StatusLunas, "gaji karyawan", 3000000),
		tx("2025-02-03", model.TxExpense, model.StatusLunas, "Pajak", 100000),
	}
	if got := TotalByCategoryMatch(txs, model.TxExpense, "Gaji Karyawan", "gaji"); got != 8000000 {
		t.Errorf("salary expense = %v, want 8000000", got)
	}
	if got := TotalByCategoryMatch(txs, model.TxExpense, "Pajak", "pajak"); got != 100000 {
		t.Errorf("tax expense = %v, want 100000", got)
	}
}

func TestTotalByCategoryMatchSubstring(t *testing.T) {
	cases := []struct {
		category string
		want     float64
	}{
		{"Pajak", 1},
		{"pajak penghasilan", 1},
		{"PPh 21 (Pajak)", 1},
		{"Operasional", 0},
		{"", 0},
	}
	for _, tc := range cases {
		txs := []model.Transaction{tx("2025-01-01", model.TxExpense, model.StatusLunas, tc.category, 1)}
		if got := TotalByCategoryMatch(txs, model.TxExpense, "Pajak", "pajak"); got != tc.want {
			t.Errorf("category %q matched = %v, want %v", tc.category, got, tc.want)
		}
	}
}

func TestFilterByDateRangeInclusiveEnd(t *testing.T) {
	txs := []model.Transaction{
		tx("2025-03-01", model.TxIncome, model.StatusLunas, "", 1),
		tx("2025-03-15", model.TxIncome, model.StatusLunas, "", 2),
		tx("2025-03-31", model.TxIncome, model.StatusLunas, "", 4),
		tx("2025-04-01", model.TxIncome, model.StatusLunas, "", 8),
	}
	start, _ := time.Parse("2006-01-02", "2025-03-01")
	end, _ := time.Parse("2006-01-02", "2025-03-31")

	got := FilterByDateRange(txs, start, end)
	var sum float64
	for _, t := range got {
		sum += t.Amount
	}
	if len(got) != 3 || sum != 7 {
		t.Errorf("got %d transactions totaling %v, want 3 totaling 7", len(got), sum)
	}

	// Same-day range keeps that day's transactions.
	sameDay := FilterByDateRange(txs, end, end)
	if len(sameDay) != 1 || sameDay[0].Amount != 4 {
		t.Errorf("same-day range returned %d transactions, want the Mar 31 one", len(sameDay))
	}
}

func TestCashBalance(t *testing.T) {
	txs := []model.Transaction{
		tx("2025-01-05", model.TxIncome, model.StatusLunas, "", 1000),
		tx("2025-01-20", model.TxExpense, model.StatusLunas, "", 300),
		tx("2025-02-10", model.TxTax, model.StatusLunas, "", 100),
		tx("2025-03-01", model.TxIncome, model.StatusLunas, "", 5000),
	}
	until, _ := time.Parse("2006-01-02", "2025-02-28")
	if got := CashBalance(txs, until); got != 600 {
		t.Errorf("balance until Feb = %v, want 600", got)
	}
	if got := CashBalance(nil, until); got != 0 {
		t.Errorf("balance of empty ledger = %v, want 0", got)
	}
}

func TestMonthlySeriesOmitsGaps(t *testing.T) {
	txs := []model.Transaction{
		tx("2025-01-10", model.TxIncome, model.StatusLunas, "", 100),
		tx("2025-03-10", model.TxExpense, model.StatusLunas, "", 40),
		tx("2025-03-20", model.TxIncome, model.StatusLunas, "", 60),
	}
	series := MonthlySeries(txs)
	if len(series) != 2 {
		t.Fatalf("dense series has %d buckets, want 2 (Feb omitted)", len(series))
	}
	if series[0].Key != "2025-01" || series[1].Key != "2025-03" {
		t.Errorf("keys = %q, %q; want 2025-01, 2025-03", series[0].Key, series[1].Key)
	}
	if series[1].Income != 60 || series[1].Expense != 40 || series[1].Balance != 20 {
		t.Errorf("march bucket = %+v", series[1])
	}
	if got := MonthlySeries(nil); len(got) != 0 {
		t.Errorf("empty input produced %d buckets", len(got))
	}
}

func TestTrailingSeriesZeroFillsGaps(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-03-15")
	txs := []model.Transaction{
		tx("2025-01-10", model.TxIncome, model.StatusLunas, "", 100),
		tx("2025-03-10", model.TxIncome, model.StatusLunas, "", 50),
	}
	series := TrailingSeries(txs, now, 6)
	if len(series) != 6 {
		t.Fatalf("trailing series has %d points, want 6", len(series))
	}
	if series[0].Key != "2024-10" || series[5].Key != "2025-03" {
		t.Errorf("window = %q..%q, want 2024-10..2025-03", series[0].Key, series[5].Key)
	}
	// February has no transactions but must still be present, zero-filled.
	feb := series[4]
	if feb.Key != "2025-02" || feb.Income != 0 || feb.Expense != 0 || feb.Balance != 0 {
		t.Errorf("february point = %+v, want zero-filled 2025-02", feb)
	}
	if series[3].Balance != 100 || series[5].Balance != 50 {
		t.Errorf("balances = %v and %v, want 100 and 50", series[3].Balance, series[5].Balance)
	}
}

func TestLinearTrendProjection(t *testing.T) {
	series := []MonthPoint{
		{Key: "2025-01", Balance: 100},
		{Key: "2025-02", Balance: 200},
		{Key: "2025-03", Balance: 400},
	}
	proj := LinearTrendProjection(series, 3)
	if proj.AvgGrowth != 150 {
		t.Errorf("avg growth = %v, want 150", proj.AvgGrowth)
	}
	want := []float64{550, 700, 850}
	if len(proj.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(proj.Points))
	}
	for i, p := range proj.Points {
		if p.Balance != want[i] {
			t.Errorf("point %d balance = %v, want %v", i, p.Balance, want[i])
		}
	}
	if proj.Points[0].Key != "2025-04" || proj.Points[2].Key != "2025-06" {
		t.Errorf("projected keys = %q..%q, want 2025-04..2025-06", proj.Points[0].Key, proj.Points[2].Key)
	}
}

func TestLinearTrendProjectionSkipsZeroPrevious(t *testing.T) {
	// The 0 -> 500 jump must not contribute to the average.
	series := []MonthPoint{
		{Key: "2025-01", Balance: 0},
		{Key: "2025-02", Balance: 500},
		{Key: "2025-03", Balance: 600},
	}
	proj := LinearTrendProjection(series, 1)
	if proj.AvgGrowth != 100 {
		t.Errorf("avg growth = %v, want 100 (zero-previous pair excluded)", proj.AvgGrowth)
	}
	if proj.Points[0].Balance != 700 {
		t.Errorf("projected balance = %v, want 700", proj.Points[0].Balance)
	}
}

func TestLinearTrendProjectionAllZero(t *testing.T) {
	series := []MonthPoint{{Key: "2025-01"}, {Key: "2025-02"}}
	proj := LinearTrendProjection(series, 2)
	if proj.AvgGrowth != 0 {
		t.Errorf("avg growth = %v, want 0", proj.AvgGrowth)
	}
	for _, p := range proj.Points {
		if p.Balance != 0 {
			t.Errorf("projected balance = %v, want 0", p.Balance)
		}
	}
}

func TestComputeDashboardStats(t *testing.T) {
	txs := []model.Transaction{
		tx("2025-01-01", model.TxIncome, model.StatusLunas, "Pendapatan Jasa", 10000000),
		tx("2025-01-02", model.TxIncome, model.StatusBelumBayar, "Pendapatan Jasa", 2000000),
		tx("2025-01-03", model.TxExpense, model.StatusLunas, "Gaji Karyawan", 4000000),
		tx("2025-01-04", model.TxExpense, model.StatusMenunggu, "Operasional", 500000),
		tx("2025-01-05", model.TxExpense, model.StatusLunas, "Pajak", 300000),
		tx("2025-01-06", model.TxTax, model.StatusLunas, "PPh 25", 200000),
	}
	stats := ComputeDashboardStats(txs)
	if stats.Income != 10000000 {
		t.Errorf("income = %v", stats.Income)
	}
	if stats.Expense != 4500000 {
		t.Errorf("expense = %v, want 4500000 (expense + tax, Lunas only)", stats.Expense)
	}
	if stats.Balance != 5500000 {
		t.Errorf("balance = %v", stats.Balance)
	}
	if stats.Receivable != 2000000 {
		t.Errorf("receivable = %v", stats.Receivable)
	}
	if stats.Debt != 500000 {
		t.Errorf("debt = %v", stats.Debt)
	}
	// Both the first-class tax transaction and the Pajak-categorized expense count.
	if stats.TaxExpense != 500000 {
		t.Errorf("tax expense = %v, want 500000", stats.TaxExpense)
	}
	if stats.SalaryExpense != 4000000 {
		t.Errorf("salary expense = %v", stats.SalaryExpense)
	}
}

func TestComputeIncomeStatementAndCashFlow(t *testing.T) {
	month := []model.Transaction{
		tx("2025-04-01", model.TxIncome, model.StatusLunas, "", 9000000),
		tx("2025-04-10", model.TxExpense, model.StatusLunas, "", 3000000),
		tx("2025-04-15", model.TxTax, model.StatusLunas, "", 500000),
	}
	st := ComputeIncomeStatement(month)
	if st.Revenue != 9000000 || st.TotalExpense != 3500000 || st.NetProfit != 5500000 {
		t.Errorf("income statement = %+v", st)
	}

	cf := ComputeCashFlow(month, 1000000)
	if cf.Operating != 5500000 || cf.ClosingBalance != 6500000 {
		t.Errorf("cash flow = %+v", cf)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"50000", 50000},
		{" 1234.5 ", 1234.5},
		{"", 0},
		{"abc", 0},
		{"12,5", 0},
		{"-300", -300},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{50000, "Rp 50.000"},
		{1500000, "Rp 1.500.000"},
		{-75000, "Rp -75.000"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Errorf("FormatRupiah(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDocumentTotalExactWithoutDiscountAndTax(t *testing.T) {
	items := []model.DocumentItem{
		{Qty: 2, Price: 150000},
		{Qty: 1, Price: 75000},
		{Qty: 3, Price: 10000},
	}
	got := ComputeDocumentTotal(items, 0, 0)
	if got.Total != got.Subtotal || got.Subtotal != 405000 {
		t.Errorf("totals = %+v, want subtotal == total == 405000", got)
	}
}

func TestDocumentTotalMonotonic(t *testing.T) {
	items := []model.DocumentItem{{Qty: 1, Price: 1000000}}
	prev := math.Inf(-1)
	for _, taxPct := range []float64{0, 1, 5, 11, 50, 100} {
		total := ComputeDocumentTotal(items, 10, taxPct).Total
		if total < prev {
			t.Errorf("total decreased when tax rose to %v%%", taxPct)
		}
		prev = total
	}
	prev = math.Inf(1)
	for _, discPct := range []float64{0, 10, 50, 100, 150} {
		total := ComputeDocumentTotal(items, discPct, 11).Total
		if total > prev {
			t.Errorf("total increased when discount rose to %v%%", discPct)
		}
		prev = total
	}
	// Discount beyond 100% floors the grand total at zero.
	if got := ComputeDocumentTotal(items, 150, 11).Total; got != 0 {
		t.Errorf("over-discounted total = %v, want 0", got)
	}
}

func TestComputeDividendAllocation(t *testing.T) {
	alloc := ComputeDividendAllocation(10000000, model.DefaultDividendSettings())
	if alloc.RetainedEarnings != 4000000 || alloc.Dividends != 2500000 || alloc.CSR != 1000000 {
		t.Errorf("allocation = %+v", alloc)
	}
	if alloc.Allocated != 10000000 {
		t.Errorf("allocated = %v, want 10000000 for a 100%% configuration", alloc.Allocated)
	}

	// Partial configurations are not renormalized.
	partial := model.DividendSettings{RetainedEarnings: 30, Dividends: 20}
	alloc = ComputeDividendAllocation(10000000, partial)
	if alloc.Allocated != 5000000 {
		t.Errorf("partial allocated = %v, want 5000000 (no renormalization)", alloc.Allocated)
	}
}
