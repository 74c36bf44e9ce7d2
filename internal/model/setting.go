package model

import "gorm.io/datatypes"

// AppSetting is a key/value row for workspace-wide configuration
// (dividend percentages, initial capital).
type AppSetting struct {
	Key   string         `gorm:"type:text;primary_key" json:"key"`
	Value datatypes.JSON `gorm:"type:jsonb" json:"value"`
}

func (AppSetting) TableName() string {
	return "app_settings"
}

// Setting keys.
const (
	SettingDividend = "dividend_settings"
	SettingCapital  = "initial_capital"
)

// DefaultInitialCapital is used until the admin saves their own figure.
const DefaultInitialCapital = 100000000

// DividendSettings holds the six allocation buckets in percent.
// The percentages should sum to 100; that is enforced when saving,
// not when computing allocations.
type DividendSettings struct {
	RetainedEarnings float64 `json:"retained_earnings"`
	Dividends        float64 `json:"dividends"`
	Directors        float64 `json:"directors"`
	Commissioners    float64 `json:"commissioners"`
	Employees        float64 `json:"employees"`
	CSR              float64 `json:"csr"`
}

// DefaultDividendSettings mirrors the seed configuration of the app.
func DefaultDividendSettings() DividendSettings {
	return DividendSettings{
		RetainedEarnings: 40,
		Dividends:        25,
		Directors:        10,
		Commissioners:    5,
		Employees:        10,
		CSR:              10,
	}
}

// SumPercent totals the six buckets.
func (s DividendSettings) SumPercent() float64 {
	return s.RetainedEarnings + s.Dividends + s.Directors + s.Commissioners + s.Employees + s.CSR
}
