// file: internals/features/hostel/settings/dto/hostel_setting_dto.go
package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"hostelku_backend/internals/features/hostel/settings/model"
)

// ========== UPSERT ==========

type BankAccountInput struct {
	BankName      string `json:"bank_name" validate:"required,max=60"`
	AccountNumber string `json:"account_number" validate:"required,max=40"`
	AccountName   string `json:"account_name" validate:"required,max=120"`
}

type UpsertHostelSettingRequest struct {
	HostelSettingName    string `json:"hostel_setting_name" validate:"required,max=120"`
	HostelSettingAddress string `json:"hostel_setting_address" validate:"omitempty,max=500"`

	HostelSettingWaterCalculationMethod string `json:"hostel_setting_water_calculation_method" validate:"required,oneof=unit person"`
	HostelSettingWaterUnitPrice         int    `json:"hostel_setting_water_unit_price" validate:"min=0"`
	HostelSettingWaterPricePerPerson    int    `json:"hostel_setting_water_price_per_person" validate:"min=0"`
	HostelSettingElectricUnitPrice      int    `json:"hostel_setting_electric_unit_price" validate:"min=0"`
	HostelSettingLateFeePerDay          int    `json:"hostel_setting_late_fee_per_day" validate:"min=0"`

	HostelSettingBankAccount *BankAccountInput `json:"hostel_setting_bank_account" validate:"omitempty"`
}

// ApplyTo menyalin request ke model (snapshot penuh, bukan partial)
func (r *UpsertHostelSettingRequest) ApplyTo(m *model.HostelSettingModel) {
	m.HostelSettingName = r.HostelSettingName
	m.HostelSettingAddress = r.HostelSettingAddress
	m.HostelSettingWaterCalculationMethod = model.WaterCalculationMethod(r.HostelSettingWaterCalculationMethod)
	m.HostelSettingWaterUnitPrice = r.HostelSettingWaterUnitPrice
	m.HostelSettingWaterPricePerPerson = r.HostelSettingWaterPricePerPerson
	m.HostelSettingElectricUnitPrice = r.HostelSettingElectricUnitPrice
	m.HostelSettingLateFeePerDay = r.HostelSettingLateFeePerDay

	if r.HostelSettingBankAccount != nil {
		if b, err := json.Marshal(r.HostelSettingBankAccount); err == nil {
			m.HostelSettingBankAccount = datatypes.JSON(b)
		}
	}
}
