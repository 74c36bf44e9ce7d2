// Package ledger turns flat transaction collections into the derived
// figures KEUDE shows: dashboard statistics, monthly series, trend
// projections, financial statements, fund matrices, and document totals.
//
// Every function is pure and stateless: callers (services) fetch the full
// collections from storage and pass them in, and each call re-derives its
// result from scratch. Empty or nil inputs always yield zero totals or
// empty slices, never an error.
package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"keude/internal/model"
)

// TotalByTypeAndStatus sums amounts of transactions matching the type whose
// status is in the given set. An empty status set matches nothing.
func TotalByTypeAndStatus(txs []model.Transaction, typ model.TransactionType, statuses []model.TransactionStatus) float64 {
	var total float64
	for _, t := range txs {
		if t.Type != typ {
			continue
		}
		for _, s := range statuses {
			if t.Status == s {
				total += t.Amount
				break
			}
		}
	}
	return total
}

// TotalByType sums amounts of all transactions of the given type regardless
// of status.
func TotalByType(txs []model.Transaction, typ model.TransactionType) float64 {
	var total float64
	for _, t := range txs {
		if t.Type == typ {
			total += t.Amount
		}
	}
	return total
}

// TotalByCategoryMatch sums amounts of transactions of the given type whose
// category equals exact or case-insensitively contains keyword. Categories
// are free text, so the substring match is intentional lenient behavior.
func TotalByCategoryMatch(txs []model.Transaction, typ model.TransactionType, exact, keyword string) float64 {
	keyword = strings.ToLower(keyword)
	var total float64
	for _, t := range txs {
		if t.Type != typ {
			continue
		}
		if t.Category == exact || (t.Category != "" && strings.Contains(strings.ToLower(t.Category), keyword)) {
			total += t.Amount
		}
	}
	return total
}

// TotalByCategories sums amounts of transactions whose category is exactly
// one of the given labels, any type.
func TotalByCategories(txs []model.Transaction, categories ...string) float64 {
	var total float64
	for _, t := range txs {
		for _, c := range categories {
			if t.Category == c {
				total += t.Amount
				break
			}
		}
	}
	return total
}

// endOfDay pushes a date to 23:59:59.999 so same-day range boundaries are
// inclusive.
func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999000000, d.Location())
}

// FilterByDateRange returns transactions whose date falls within
// [start, end], with end treated as end-of-day.
func FilterByDateRange(txs []model.Transaction, start, end time.Time) []model.Transaction {
	limit := endOfDay(end)
	var out []model.Transaction
	for _, t := range txs {
		if !t.Date.Before(start) && !t.Date.After(limit) {
			out = append(out, t)
		}
	}
	return out
}

// CashBalance is the running balance up to and including a date:
// income minus expense minus tax.
func CashBalance(txs []model.Transaction, until time.Time) float64 {
	limit := endOfDay(until)
	var inc, exp, tax float64
	for _, t := range txs {
		if t.Date.After(limit) {
			continue
		}
		switch t.Type {
		case model.TxIncome:
			inc += t.Amount
		case model.TxExpense:
			exp += t.Amount
		case model.TxTax:
			tax += t.Amount
		}
	}
	return inc - exp - tax
}

// MonthPoint is one calendar-month bucket of a time series.
type MonthPoint struct {
	Key     string  `json:"key"` // YYYY-MM
	Label   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

var monthShortID = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

func monthKey(d time.Time) string {
	return d.Format("2006-01")
}

func monthLabel(key string, withYear bool) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	if withYear {
		return fmt.Sprintf("%s %s", monthShortID[int(t.Month())-1], t.Format("06"))
	}
	return monthShortID[int(t.Month())-1]
}

// MonthlySeries groups transactions into per-month income/expense buckets,
// ordered by month key. Months without transactions are omitted (sparse
// series); use TrailingSeries for a fixed, zero-filled window. Tax
// transactions count as cash going out, so they land in the expense bucket.
func MonthlySeries(txs []model.Transaction) []MonthPoint {
	buckets := make(map[string]*MonthPoint)
	for _, t := range txs {
		key := monthKey(t.Date)
		p, ok := buckets[key]
		if !ok {
			p = &MonthPoint{Key: key, Label: monthLabel(key, true)}
			buckets[key] = p
		}
		switch t.Type {
		case model.TxIncome:
			p.Income += t.Amount
		case model.TxExpense, model.TxTax:
			p.Expense += t.Amount
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]MonthPoint, 0, len(keys))
	for _, k := range keys {
		p := buckets[k]
		p.Balance = p.Income - p.Expense
		series = append(series, *p)
	}
	return series
}

// TrailingSeries builds a fixed window of the last n calendar months ending
// at now, oldest first. Months without transactions are zero-filled, which
// the projection needs to keep its month-over-month deltas aligned.
func TrailingSeries(txs []model.Transaction, now time.Time, n int) []MonthPoint {
	series := make([]MonthPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		key := monthKey(d)
		p := MonthPoint{Key: key, Label: monthLabel(key, false)}
		for _, t := range txs {
			if monthKey(t.Date) != key {
				continue
			}
			switch t.Type {
			case model.TxIncome:
				p.Income += t.Amount
			case model.TxExpense, model.TxTax:
				p.Expense += t.Amount
			}
		}
		p.Balance = p.Income - p.Expense
		series = append(series, p)
	}
	return series
}

// ProjectedPoint is one extrapolated month of the trend projection.
type ProjectedPoint struct {
	Key     string  `json:"key"`
	Label   string  `json:"month"`
	Balance float64 `json:"balance"`
}

// Projection is the output of LinearTrendProjection.
type Projection struct {
	AvgGrowth float64          `json:"avg_growth"`
	Points    []ProjectedPoint `json:"points"`
	Insights  []Insight        `json:"insights"`
}

// Insight is a one-line narrative shown next to the projection chart.
type Insight struct {
	Type string `json:"type"` // positive | negative | neutral
	Text string `json:"text"`
}

// LinearTrendProjection extrapolates the balance series horizon months
// forward using the average month-over-month delta. Pairs whose previous
// balance is exactly zero are skipped when averaging; that smoothing
// heuristic is deliberate, not a regression, and should stay this simple.
func LinearTrendProjection(series []MonthPoint, horizon int) Projection {
	var totalGrowth float64
	var growthCount int
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Balance
		if prev != 0 {
			totalGrowth += series[i].Balance - prev
			growthCount++
		}
	}
	var avgGrowth float64
	if growthCount > 0 {
		avgGrowth = totalGrowth / float64(growthCount)
	}

	proj := Projection{AvgGrowth: avgGrowth}
	if len(series) == 0 {
		return proj
	}

	last, err := time.Parse("2006-01", series[len(series)-1].Key)
	if err != nil {
		last = time.Now()
	}
	balance := series[len(series)-1].Balance
	for i := 1; i <= horizon; i++ {
		d := time.Date(last.Year(), last.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		balance += avgGrowth
		key := monthKey(d)
		proj.Points = append(proj.Points, ProjectedPoint{
			Key:     key,
			Label:   monthLabel(key, false),
			Balance: balance,
		})
	}

	current := series[len(series)-1].Balance
	var previous float64
	if len(series) >= 2 {
		previous = series[len(series)-2].Balance
	}
	if current > previous {
		proj.Insights = append(proj.Insights, Insight{
			Type: "positive",
			Text: "Tren arus kas positif! Saldo bulan ini meningkat dibandingkan bulan lalu.",
		})
	} else {
		proj.Insights = append(proj.Insights, Insight{
			Type: "negative",
			Text: "Perhatian: Arus kas menurun. Cek pengeluaran operasional.",
		})
	}
	if avgGrowth > 0 {
		proj.Insights = append(proj.Insights, Insight{
			Type: "neutral",
			Text: fmt.Sprintf("Diproyeksikan tumbuh rata-rata %s per bulan.", FormatRupiah(avgGrowth)),
		})
	}
	return proj
}

// DashboardStats is the overview block on the landing page.
type DashboardStats struct {
	Income        float64 `json:"income"`
	Expense       float64 `json:"expense"`
	Balance       float64 `json:"balance"`
	Receivable    float64 `json:"receivable"`
	Debt          float64 `json:"debt"`
	TaxExpense    float64 `json:"tax_expense"`
	SalaryExpense float64 `json:"salary_expense"`
}

// ComputeDashboardStats derives the dashboard overview from the full
// transaction list. Realized cash flow counts paid transactions only;
// receivable/debt count unpaid and pending ones. The tax figure covers
// both first-class tax transactions and legacy expenses categorized
// "Pajak" (exact or fuzzy).
func ComputeDashboardStats(txs []model.Transaction) DashboardStats {
	paid := []model.TransactionStatus{model.StatusLunas}
	pending := []model.TransactionStatus{model.StatusBelumBayar, model.StatusMenunggu}

	income := TotalByTypeAndStatus(txs, model.TxIncome, paid)
	expense := TotalByTypeAndStatus(txs, model.TxExpense, paid) + TotalByTypeAndStatus(txs, model.TxTax, paid)

	return DashboardStats{
		Income:        income,
		Expense:       expense,
		Balance:       income - expense,
		Receivable:    TotalByTypeAndStatus(txs, model.TxIncome, pending),
		Debt:          TotalByTypeAndStatus(txs, model.TxExpense, pending) + TotalByTypeAndStatus(txs, model.TxTax, pending),
		TaxExpense:    TotalByType(txs, model.TxTax) + TotalByCategoryMatch(txs, model.TxExpense, "Pajak", "pajak"),
		SalaryExpense: TotalByCategoryMatch(txs, model.TxExpense, "Gaji Karyawan", "gaji"),
	}
}

// IncomeStatement is the laba/rugi report for a pre-filtered period.
type IncomeStatement struct {
	Revenue      float64 `json:"revenue"`
	Expense      float64 `json:"expense"`
	Tax          float64 `json:"tax"`
	TotalExpense float64 `json:"total_expense"` // beban termasuk pajak
	NetProfit    float64 `json:"net_profit"`
}

// ComputeIncomeStatement derives revenue, expense including tax, and net
// profit from the given (already period-filtered) transactions.
func ComputeIncomeStatement(txs []model.Transaction) IncomeStatement {
	rev := TotalByType(txs, model.TxIncome)
	exp := TotalByType(txs, model.TxExpense)
	tax := TotalByType(txs, model.TxTax)
	return IncomeStatement{
		Revenue:      rev,
		Expense:      exp,
		Tax:          tax,
		TotalExpense: exp + tax,
		NetProfit:    rev - exp - tax,
	}
}

// CashFlow is the arus kas report for one month.
type CashFlow struct {
	OpeningBalance float64 `json:"opening_balance"`
	Operating      float64 `json:"operating"`
	ClosingBalance float64 `json:"closing_balance"`
}

// ComputeCashFlow combines the opening balance with the operating result of
// the (already month-filtered) transactions.
func ComputeCashFlow(monthTxs []model.Transaction, openingBalance float64) CashFlow {
	st := ComputeIncomeStatement(monthTxs)
	return CashFlow{
		OpeningBalance: openingBalance,
		Operating:      st.NetProfit,
		ClosingBalance: openingBalance + st.NetProfit,
	}
}

// ParseAmount does best-effort numeric parsing: whitespace is trimmed and
// anything unparseable degrades to 0. Free-form user input must never turn
// into an error here.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatRupiah renders a whole-Rupiah amount with dot thousand separators,
// e.g. 1500000 -> "Rp 1.500.000".
func FormatRupiah(amount float64) string {
	n := int64(amount)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Rp " + sign + b.String()
}
