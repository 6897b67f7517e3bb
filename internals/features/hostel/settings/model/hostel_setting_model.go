// file: internals/features/hostel/settings/model/hostel_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// =========================================================
// ENUM — metode perhitungan air
// =========================================================

type WaterCalculationMethod string

const (
	// tagihan air dari selisih meteran
	WaterMethodUnit WaterCalculationMethod = "unit"
	// tagihan air flat per orang per bulan
	WaterMethodPerson WaterCalculationMethod = "person"
)

// =========================================================
// MODEL — konfigurasi hostel (single row)
// =========================================================

// HostelSettingModel merepresentasikan tabel hostel_settings.
// Tabel ini singleton: kolom hostel_setting_singleton selalu TRUE dan
// unique, jadi insert kedua pasti gagal di DB.
type HostelSettingModel struct {
	HostelSettingID        uuid.UUID `gorm:"column:hostel_setting_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"hostel_setting_id"`
	HostelSettingSingleton bool      `gorm:"column:hostel_setting_singleton;not null;default:true;uniqueIndex" json:"-"`

	HostelSettingName    string `gorm:"column:hostel_setting_name;type:varchar(120);not null" json:"hostel_setting_name"`
	HostelSettingAddress string `gorm:"column:hostel_setting_address;type:text;not null;default:''" json:"hostel_setting_address"`

	// Harga utilitas
	HostelSettingWaterCalculationMethod WaterCalculationMethod `gorm:"column:hostel_setting_water_calculation_method;type:varchar(10);not null;default:'unit'" json:"hostel_setting_water_calculation_method"`
	HostelSettingWaterUnitPrice         int                    `gorm:"column:hostel_setting_water_unit_price;not null;default:0;check:hostel_setting_water_unit_price>=0" json:"hostel_setting_water_unit_price"`
	HostelSettingWaterPricePerPerson    int                    `gorm:"column:hostel_setting_water_price_per_person;not null;default:100;check:hostel_setting_water_price_per_person>=0" json:"hostel_setting_water_price_per_person"`
	HostelSettingElectricUnitPrice      int                    `gorm:"column:hostel_setting_electric_unit_price;not null;default:0;check:hostel_setting_electric_unit_price>=0" json:"hostel_setting_electric_unit_price"`
	HostelSettingLateFeePerDay          int                    `gorm:"column:hostel_setting_late_fee_per_day;not null;default:0;check:hostel_setting_late_fee_per_day>=0" json:"hostel_setting_late_fee_per_day"`

	// Info rekening buat instruksi transfer di portal penghuni
	// {"bank_name":"...","account_number":"...","account_name":"..."}
	HostelSettingBankAccount datatypes.JSON `gorm:"column:hostel_setting_bank_account;type:jsonb;not null;default:'{}'" json:"hostel_setting_bank_account"`

	HostelSettingCreatedAt time.Time `gorm:"column:hostel_setting_created_at;autoCreateTime" json:"hostel_setting_created_at"`
	HostelSettingUpdatedAt time.Time `gorm:"column:hostel_setting_updated_at;autoUpdateTime" json:"hostel_setting_updated_at"`
}

// TableName mengikat model ke tabel hostel_settings
func (HostelSettingModel) TableName() string { return "hostel_settings" }

// WaterPricePerPersonOrDefault: fallback 100 kalau belum pernah diset.
// Dipakai kalkulator invoice metode 'person'.
func (m *HostelSettingModel) WaterPricePerPersonOrDefault() int {
	if m.HostelSettingWaterPricePerPerson <= 0 {
		return 100
	}
	return m.HostelSettingWaterPricePerPerson
}
