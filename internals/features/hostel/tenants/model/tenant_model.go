// file: internals/features/hostel/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TenantModel struct {
	TenantID uuid.UUID `gorm:"column:tenant_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"tenant_id"`

	// Akun portal (users.id) — nullable: penghuni boleh belum punya akun
	TenantUserID *uuid.UUID `gorm:"column:tenant_user_id;type:uuid;uniqueIndex" json:"tenant_user_id,omitempty"`

	TenantFullName     string `gorm:"column:tenant_full_name;type:varchar(120);not null" json:"tenant_full_name"`
	TenantIDCardNumber string `gorm:"column:tenant_id_card_number;type:varchar(30);not null;default:''" json:"tenant_id_card_number"`
	TenantPhoneNumber  string `gorm:"column:tenant_phone_number;type:varchar(20);not null;default:''" json:"tenant_phone_number"`

	// {"name":"...","phone":"...","relation":"..."}
	TenantEmergencyContact datatypes.JSON `gorm:"column:tenant_emergency_contact;type:jsonb;not null;default:'{}'" json:"tenant_emergency_contact"`

	// Harus selalu sinkron dengan rooms.room_current_tenant_id (diubah dalam satu transaksi)
	TenantCurrentRoomID *uuid.UUID `gorm:"column:tenant_current_room_id;type:uuid;index" json:"tenant_current_room_id"`

	TenantContractStartDate *time.Time `gorm:"column:tenant_contract_start_date" json:"tenant_contract_start_date,omitempty"`
	TenantContractEndDate   *time.Time `gorm:"column:tenant_contract_end_date" json:"tenant_contract_end_date,omitempty"`
	TenantDepositAmount     int        `gorm:"column:tenant_deposit_amount;not null;default:0;check:tenant_deposit_amount>=0" json:"tenant_deposit_amount"`

	// [{"type":"ktp","url":"..."}]
	TenantDocuments datatypes.JSON `gorm:"column:tenant_documents;type:jsonb;not null;default:'[]'" json:"tenant_documents"`

	TenantCreatedAt time.Time      `gorm:"column:tenant_created_at;autoCreateTime" json:"tenant_created_at"`
	TenantUpdatedAt time.Time      `gorm:"column:tenant_updated_at;autoUpdateTime" json:"tenant_updated_at"`
	TenantDeletedAt gorm.DeletedAt `gorm:"column:tenant_deleted_at;index" json:"-"`
}

// TableName mengikat model ke tabel tenants
func (TenantModel) TableName() string { return "tenants" }
