package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"keude/internal/model"
)

type fakeSettingRepo struct {
	values map[string]json.RawMessage
}

func (r *fakeSettingRepo) Get(key string, out interface{}) (bool, error) {
	raw, ok := r.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (r *fakeSettingRepo) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = raw
	return nil
}

type fakeTransactionRepo struct {
	txs []model.Transaction
}

func (r *fakeTransactionRepo) FindAll() ([]model.Transaction, error) {
	return r.txs, nil
}

func (r *fakeTransactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	for i := range r.txs {
		if r.txs[i].ID == id {
			return &r.txs[i], nil
		}
	}
	return nil, ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Create(tx *model.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	r.txs = append(r.txs, *tx)
	return nil
}

func (r *fakeTransactionRepo) Update(id uuid.UUID, updates map[string]interface{}) (*model.Transaction, error) {
	return r.FindByID(id)
}

func (r *fakeTransactionRepo) Delete(id uuid.UUID) error {
	for i := range r.txs {
		if r.txs[i].ID == id {
			r.txs = append(r.txs[:i], r.txs[i+1:]...)
			return nil
		}
	}
	return nil
}

func newDividendFixture(txs []model.Transaction, members map[uuid.UUID]*model.Member) (DividendService, *fakeSettingRepo) {
	settings := &fakeSettingRepo{values: map[string]json.RawMessage{}}
	if members == nil {
		members = map[uuid.UUID]*model.Member{}
	}
	svc := NewDividendService(settings, &fakeTransactionRepo{txs: txs}, &fakeMemberRepo{members: members}, &fakeActivityRepo{}, nil)
	return svc, settings
}

func TestSaveSettingsRejectsBadSum(t *testing.T) {
	svc, store := newDividendFixture(nil, nil)

	bad := model.DividendSettings{RetainedEarnings: 50, Dividends: 25, Directors: 10, Commissioners: 5, Employees: 5, CSR: 10}
	err := svc.SaveSettings(bad, "tester")
	if err == nil {
		t.Fatal("expected error for percentages summing to 105")
	}
	if !strings.Contains(err.Error(), "100") {
		t.Errorf("error should mention the 100%% rule, got %q", err)
	}
	if len(store.values) != 0 {
		t.Error("invalid settings must not be persisted")
	}
}

func TestSaveSettingsAcceptsExactHundred(t *testing.T) {
	svc, store := newDividendFixture(nil, nil)

	good := model.DefaultDividendSettings()
	if err := svc.SaveSettings(good, "tester"); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if _, ok := store.values[model.SettingDividend]; !ok {
		t.Fatal("settings were not persisted")
	}

	loaded, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if loaded != good {
		t.Errorf("round-trip mismatch: %+v", loaded)
	}
}

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	svc, _ := newDividendFixture(nil, nil)

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings != model.DefaultDividendSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestGetCapitalDefault(t *testing.T) {
	svc, _ := newDividendFixture(nil, nil)

	capital, err := svc.GetCapital()
	if err != nil {
		t.Fatalf("GetCapital: %v", err)
	}
	if capital != model.DefaultInitialCapital {
		t.Errorf("capital = %v, want default %v", capital, float64(model.DefaultInitialCapital))
	}
}

func TestGetAllocationSplitsNetProfit(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TxIncome, Status: model.StatusLunas, Amount: 10000000},
		{Type: model.TxExpense, Status: model.StatusLunas, Amount: 3000000},
		{Type: model.TxTax, Status: model.StatusLunas, Amount: 1000000},
	}
	memberID := uuid.New()
	members := map[uuid.UUID]*model.Member{
		memberID: {Name: "Budi", Type: model.MemberKaryawan, InitialFund: 500000},
	}
	members[memberID].ID = memberID

	svc, _ := newDividendFixture(txs, members)

	resp, err := svc.GetAllocation()
	if err != nil {
		t.Fatalf("GetAllocation: %v", err)
	}
	if resp.Allocation.NetProfit != 6000000 {
		t.Errorf("net profit = %v, want 6000000", resp.Allocation.NetProfit)
	}
	// 40% retained earnings of 6,000,000.
	if resp.Allocation.RetainedEarnings != 2400000 {
		t.Errorf("retained earnings = %v, want 2400000", resp.Allocation.RetainedEarnings)
	}
	if resp.AdditionalCapital != 500000 {
		t.Errorf("additional capital = %v, want 500000", resp.AdditionalCapital)
	}
	if resp.TotalCapital != model.DefaultInitialCapital+500000 {
		t.Errorf("total capital = %v", resp.TotalCapital)
	}
}

func TestSaveCapitalRejectsNegative(t *testing.T) {
	svc, store := newDividendFixture(nil, nil)

	if err := svc.SaveCapital(-1, "tester"); err == nil {
		t.Fatal("expected error for negative capital")
	}
	if len(store.values) != 0 {
		t.Error("negative capital must not be persisted")
	}

	if err := svc.SaveCapital(75000000, "tester"); err != nil {
		t.Fatalf("SaveCapital: %v", err)
	}
	capital, err := svc.GetCapital()
	if err != nil {
		t.Fatalf("GetCapital: %v", err)
	}
	if capital != 75000000 {
		t.Errorf("capital = %v, want 75000000", capital)
	}
}
