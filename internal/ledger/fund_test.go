package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"keude/internal/model"
)

func TestBuildFundMatrix(t *testing.T) {
	budi := model.Member{BaseModel: model.BaseModel{ID: uuid.New()}, Name: "Budi", Type: model.MemberKaryawan, InitialFund: 1500000}
	sari := model.Member{BaseModel: model.BaseModel{ID: uuid.New()}, Name: "Sari", Type: model.MemberKaryawan, InitialFund: 1500000}
	klien := model.Member{BaseModel: model.BaseModel{ID: uuid.New()}, Name: "PT Mitra", Type: model.MemberKlien, InitialFund: 0}
	members := []model.Member{budi, sari, klien}

	payments := []model.Payment{
		{MemberID: budi.ID, Year: 2025, Month: 0, Amount: 50000, Paid: true, Date: time.Now()},
		{MemberID: budi.ID, Year: 2025, Month: 1, Amount: 0, Paid: true, Date: time.Now()}, // amount unset -> fallback
		{MemberID: sari.ID, Year: 2025, Month: 0, Amount: 50000, Paid: true, Date: time.Now()},
		{MemberID: sari.ID, Year: 2024, Month: 11, Amount: 50000, Paid: true, Date: time.Now()}, // other year
	}

	m := BuildFundMatrix(members, payments, 2025)

	// Clients are excluded from rows but their funds count toward principal.
	if len(m.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 employees", len(m.Rows))
	}
	if m.TotalPrincipal != 3000000 {
		t.Errorf("total principal = %v, want 3000000", m.TotalPrincipal)
	}
	// Two Budi months (one via fallback) plus one Sari month; 2024 excluded.
	if m.TotalSavings != 150000 {
		t.Errorf("total savings = %v, want 150000", m.TotalSavings)
	}

	var budiRow *FundRow
	for i := range m.Rows {
		if m.Rows[i].MemberID == budi.ID {
			budiRow = &m.Rows[i]
		}
	}
	if budiRow == nil {
		t.Fatal("missing row for Budi")
	}
	if !budiRow.Months[0].Paid || !budiRow.Months[1].Paid || budiRow.Months[2].Paid {
		t.Errorf("months = %+v", budiRow.Months[:3])
	}
	if budiRow.Months[1].Amount != model.MonthlyObligation {
		t.Errorf("fallback amount = %v, want %v", budiRow.Months[1].Amount, model.MonthlyObligation)
	}
	if budiRow.PaidCount != 2 || budiRow.YearTotal != 100000 {
		t.Errorf("paid count %d / year total %v", budiRow.PaidCount, budiRow.YearTotal)
	}
}

func TestBuildFundMatrixEmpty(t *testing.T) {
	m := BuildFundMatrix(nil, nil, 2025)
	if len(m.Rows) != 0 || m.TotalPrincipal != 0 || m.TotalSavings != 0 {
		t.Errorf("empty matrix = %+v", m)
	}
}
