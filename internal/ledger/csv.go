package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"keude/internal/model"
)

// CSVHeader is the column row of the laporan keuangan export.
var CSVHeader = []string{"Tanggal", "Kategori", "Deskripsi", "Status", "Nominal", "Tipe"}

// ExportCSV renders transactions as CSV, one row per transaction. The
// free-text fields (category, description) are wrapped in double quotes
// via JSON string encoding, matching what the export has always produced.
func ExportCSV(txs []model.Transaction) string {
	lines := make([]string, 0, len(txs)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))
	for _, t := range txs {
		lines = append(lines, strings.Join([]string{
			t.Date.Format("2006-01-02"),
			strconv.Quote(t.Category),
			strconv.Quote(t.Description),
			string(t.Status),
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			string(t.Type),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// ParseCSV reads an export back into transactions. Parsing stays lenient:
// rows with too few fields are skipped and bad amounts degrade to 0. Only
// structurally broken quoting is an error.
func ParseCSV(data string) ([]model.Transaction, error) {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	var txs []model.Transaction
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := splitCSVLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(fields) < 6 {
			continue
		}
		date, err := time.Parse("2006-01-02", fields[0])
		if err != nil {
			date = time.Time{}
		}
		txs = append(txs, model.Transaction{
			Date:        date,
			Category:    fields[1],
			Description: fields[2],
			Status:      model.TransactionStatus(fields[3]),
			Amount:      ParseAmount(fields[4]),
			Type:        model.TransactionType(fields[5]),
		})
	}
	return txs, nil
}

// splitCSVLine splits on commas, honoring JSON-string-encoded fields so
// embedded commas and escaped quotes survive the round trip.
func splitCSVLine(line string) ([]string, error) {
	var fields []string
	i := 0
	for i <= len(line) {
		if i < len(line) && line[i] == '"' {
			end := closingQuote(line, i)
			if end < 0 {
				return nil, fmt.Errorf("unterminated quoted field")
			}
			val, err := strconv.Unquote(line[i : end+1])
			if err != nil {
				return nil, fmt.Errorf("bad quoted field: %w", err)
			}
			fields = append(fields, val)
			i = end + 1
			if i < len(line) && line[i] != ',' {
				return nil, fmt.Errorf("unexpected character after quoted field")
			}
			i++ // skip comma (or step past end)
			continue
		}
		next := strings.IndexByte(line[i:], ',')
		if next < 0 {
			fields = append(fields, line[i:])
			break
		}
		fields = append(fields, line[i:i+next])
		i += next + 1
	}
	return fields, nil
}

// closingQuote finds the index of the quote ending a JSON string literal
// starting at start, or -1.
func closingQuote(s string, start int) int {
	escaped := false
	for i := start + 1; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch s[i] {
		case '\\':
			escaped = true
		case '"':
			return i
		}
	}
	return -1
}
