package service

import (
	"errors"
	"fmt"

	"keude/internal/ledger"
	"keude/internal/model"
	"keude/internal/repository"
	"keude/internal/ws"
)

type DividendService interface {
	GetSettings() (model.DividendSettings, error)
	SaveSettings(settings model.DividendSettings, userName string) error
	GetCapital() (float64, error)
	SaveCapital(amount float64, userName string) error
	GetAllocation() (*AllocationResponse, error)
}

// AllocationResponse is the dividend page payload: capital position plus
// the bucket split of the running net profit.
type AllocationResponse struct {
	InitialCapital    float64                   `json:"initial_capital"`
	AdditionalCapital float64                   `json:"additional_capital"`
	TotalCapital      float64                   `json:"total_capital"`
	Settings          model.DividendSettings    `json:"settings"`
	Allocation        ledger.DividendAllocation `json:"allocation"`
}

type dividendService struct {
	settingRepo repository.SettingRepository
	txRepo      repository.TransactionRepository
	memberRepo  repository.MemberRepository
	audit       auditor
}

func NewDividendService(settingRepo repository.SettingRepository, txRepo repository.TransactionRepository, memberRepo repository.MemberRepository, activityRepo repository.ActivityLogRepository, hub *ws.Hub) DividendService {
	return &dividendService{
		settingRepo: settingRepo,
		txRepo:      txRepo,
		memberRepo:  memberRepo,
		audit:       auditor{activityRepo: activityRepo, hub: hub},
	}
}

func (s *dividendService) GetSettings() (model.DividendSettings, error) {
	settings := model.DefaultDividendSettings()
	found, err := s.settingRepo.Get(model.SettingDividend, &settings)
	if err != nil {
		return settings, err
	}
	if !found {
		return model.DefaultDividendSettings(), nil
	}
	return settings, nil
}

// SaveSettings rejects any split that does not total exactly 100 percent.
// The allocation math itself never renormalizes, so this gate is the only
// thing keeping the buckets honest.
func (s *dividendService) SaveSettings(settings model.DividendSettings, userName string) error {
	if sum := settings.SumPercent(); sum != 100 {
		return fmt.Errorf("allocation percentages must sum to 100, got %g", sum)
	}

	if err := s.settingRepo.Set(model.SettingDividend, settings); err != nil {
		return errors.New("failed to save dividend settings")
	}

	s.audit.record(model.ActionDividendUpdate, "app_settings",
		"Memperbarui pengaturan alokasi dividen", userName, settings)
	return nil
}

func (s *dividendService) GetCapital() (float64, error) {
	var capital float64
	found, err := s.settingRepo.Get(model.SettingCapital, &capital)
	if err != nil {
		return 0, err
	}
	if !found {
		return model.DefaultInitialCapital, nil
	}
	return capital, nil
}

func (s *dividendService) SaveCapital(amount float64, userName string) error {
	if amount < 0 {
		return errors.New("capital cannot be negative")
	}

	if err := s.settingRepo.Set(model.SettingCapital, amount); err != nil {
		return errors.New("failed to save capital")
	}

	s.audit.record(model.ActionCapitalUpdate, "app_settings",
		"Memperbarui modal awal menjadi "+ledger.FormatRupiah(amount), userName, amount)
	return nil
}

func (s *dividendService) GetAllocation() (*AllocationResponse, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	capital, err := s.GetCapital()
	if err != nil {
		return nil, err
	}

	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.FindAll()
	if err != nil {
		return nil, err
	}

	var additional float64
	for _, m := range members {
		additional += m.InitialFund
	}

	statement := ledger.ComputeIncomeStatement(txs)
	return &AllocationResponse{
		InitialCapital:    capital,
		AdditionalCapital: additional,
		TotalCapital:      capital + additional,
		Settings:          settings,
		Allocation:        ledger.ComputeDividendAllocation(statement.NetProfit, settings),
	}, nil
}
