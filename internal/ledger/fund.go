package ledger

import (
	"time"

	"github.com/google/uuid"

	"keude/internal/model"
)

// FundCell is one member-month slot of the savings matrix.
type FundCell struct {
	Paid   bool      `json:"paid"`
	Amount float64   `json:"amount,omitempty"`
	Date   time.Time `json:"date,omitempty"`
}

// FundRow is one employee's twelve-month savings state.
type FundRow struct {
	MemberID    uuid.UUID    `json:"member_id"`
	Name        string       `json:"name"`
	NIK         string       `json:"nik"`
	InitialFund float64      `json:"initial_fund"`
	Months      [12]FundCell `json:"months"`
	PaidCount   int          `json:"paid_count"`
	YearTotal   float64      `json:"year_total"`
}

// FundMatrix is the monitoring view for one calendar year.
type FundMatrix struct {
	Year           int       `json:"year"`
	Rows           []FundRow `json:"rows"`
	TotalPrincipal float64   `json:"total_principal"`
	TotalSavings   float64   `json:"total_savings"`
}

// paymentAmount is the stored amount, falling back to the fixed monthly
// obligation when a record was written without one.
func paymentAmount(p model.Payment) float64 {
	if p.Amount > 0 {
		return p.Amount
	}
	return model.MonthlyObligation
}

// BuildFundMatrix crosses employee members with the payment records of one
// year. TotalPrincipal sums initial funds over every member supplied;
// TotalSavings sums paid records of the selected year, each using its
// stored amount or the fixed obligation as fallback.
func BuildFundMatrix(members []model.Member, payments []model.Payment, year int) FundMatrix {
	matrix := FundMatrix{Year: year}

	byMember := make(map[uuid.UUID][]model.Payment)
	for _, p := range payments {
		if p.Year != year {
			continue
		}
		byMember[p.MemberID] = append(byMember[p.MemberID], p)
		if p.Paid {
			matrix.TotalSavings += paymentAmount(p)
		}
	}

	for _, m := range members {
		matrix.TotalPrincipal += m.InitialFund
		if m.Type != model.MemberKaryawan {
			continue
		}
		row := FundRow{
			MemberID:    m.ID,
			Name:        m.Name,
			NIK:         m.NIK,
			InitialFund: m.InitialFund,
		}
		for _, p := range byMember[m.ID] {
			if p.Month < 0 || p.Month > 11 || !p.Paid {
				continue
			}
			amount := paymentAmount(p)
			row.Months[p.Month] = FundCell{Paid: true, Amount: amount, Date: p.Date}
			row.PaidCount++
			row.YearTotal += amount
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix
}
