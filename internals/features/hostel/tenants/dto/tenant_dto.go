// file: internals/features/hostel/tenants/dto/tenant_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hostelku_backend/internals/features/hostel/tenants/model"
)

type EmergencyContactInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Relation string `json:"relation" validate:"omitempty,max=40"`
}

// ========== CREATE ==========

type CreateTenantRequest struct {
	TenantFullName     string `json:"tenant_full_name" validate:"required,max=120"`
	TenantIDCardNumber string `json:"tenant_id_card_number" validate:"omitempty,max=30"`
	TenantPhoneNumber  string `json:"tenant_phone_number" validate:"omitempty,max=20"`

	TenantEmergencyContact *EmergencyContactInput `json:"tenant_emergency_contact" validate:"omitempty"`

	// Kamar awal (opsional) — langsung ditempati dalam transaksi yang sama
	TenantRoomID *uuid.UUID `json:"tenant_room_id" validate:"omitempty"`

	TenantContractStartDate *time.Time `json:"tenant_contract_start_date" validate:"omitempty"`
	TenantContractEndDate   *time.Time `json:"tenant_contract_end_date" validate:"omitempty,gtfield=TenantContractStartDate"`
	TenantDepositAmount     int        `json:"tenant_deposit_amount" validate:"min=0"`
}

func (r *CreateTenantRequest) ToModel() *model.TenantModel {
	m := &model.TenantModel{
		TenantFullName:          r.TenantFullName,
		TenantIDCardNumber:      r.TenantIDCardNumber,
		TenantPhoneNumber:       r.TenantPhoneNumber,
		TenantContractStartDate: r.TenantContractStartDate,
		TenantContractEndDate:   r.TenantContractEndDate,
		TenantDepositAmount:     r.TenantDepositAmount,
	}
	if r.TenantEmergencyContact != nil {
		if b, err := json.Marshal(r.TenantEmergencyContact); err == nil {
			m.TenantEmergencyContact = datatypes.JSON(b)
		}
	}
	return m
}

// ========== UPDATE ==========

type UpdateTenantRequest struct {
	TenantFullName     *string `json:"tenant_full_name" validate:"omitempty,max=120"`
	TenantIDCardNumber *string `json:"tenant_id_card_number" validate:"omitempty,max=30"`
	TenantPhoneNumber  *string `json:"tenant_phone_number" validate:"omitempty,max=20"`

	TenantEmergencyContact *EmergencyContactInput `json:"tenant_emergency_contact" validate:"omitempty"`

	TenantContractStartDate *time.Time `json:"tenant_contract_start_date" validate:"omitempty"`
	TenantContractEndDate   *time.Time `json:"tenant_contract_end_date" validate:"omitempty"`
	TenantDepositAmount     *int       `json:"tenant_deposit_amount" validate:"omitempty,min=0"`
}

func (r *UpdateTenantRequest) ApplyTo(m *model.TenantModel) {
	if r.TenantFullName != nil {
		m.TenantFullName = *r.TenantFullName
	}
	if r.TenantIDCardNumber != nil {
		m.TenantIDCardNumber = *r.TenantIDCardNumber
	}
	if r.TenantPhoneNumber != nil {
		m.TenantPhoneNumber = *r.TenantPhoneNumber
	}
	if r.TenantEmergencyContact != nil {
		if b, err := json.Marshal(r.TenantEmergencyContact); err == nil {
			m.TenantEmergencyContact = datatypes.JSON(b)
		}
	}
	if r.TenantContractStartDate != nil {
		m.TenantContractStartDate = r.TenantContractStartDate
	}
	if r.TenantContractEndDate != nil {
		m.TenantContractEndDate = r.TenantContractEndDate
	}
	if r.TenantDepositAmount != nil {
		m.TenantDepositAmount = *r.TenantDepositAmount
	}
}

// ========== MOVE ROOM ==========

type MoveRoomRequest struct {
	// NULL = check-out (keluar tanpa kamar baru)
	NewRoomID *uuid.UUID `json:"new_room_id"`
}
