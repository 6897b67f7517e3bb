// file: internals/features/hostel/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status & tipe kamar
// =========================================================

type RoomStatus string

const (
	RoomStatusVacant      RoomStatus = "vacant"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusReserved    RoomStatus = "reserved"
)

type RoomType string

const (
	RoomTypeStandardFan RoomType = "standard_fan"
	RoomTypeStandardAir RoomType = "standard_air"
	RoomTypeSuite       RoomType = "suite"
)

// =========================================================
// MODEL
// =========================================================

type RoomModel struct {
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`

	// Nomor kamar dipakai juga di invoice_id, jadi wajib unik & stabil
	RoomNumber string `gorm:"column:room_number;type:varchar(20);not null;uniqueIndex" json:"room_number"`
	RoomFloor  int    `gorm:"column:room_floor;not null;default:1" json:"room_floor"`
	RoomType   RoomType `gorm:"column:room_type;type:varchar(20);not null;default:'standard_fan'" json:"room_type"`

	// Sewa bulanan — selalu masuk invoice sebagai item pertama tanpa diubah
	RoomBasePrice int `gorm:"column:room_base_price;not null;default:0;check:room_base_price>=0" json:"room_base_price"`

	RoomStatus RoomStatus `gorm:"column:room_status;type:varchar(20);not null;default:'vacant';index" json:"room_status"`

	// Terisi ⟺ room_current_tenant_id tidak NULL (dijaga di controller tenants)
	RoomCurrentTenantID *uuid.UUID `gorm:"column:room_current_tenant_id;type:uuid;index" json:"room_current_tenant_id"`

	RoomFacilities pq.StringArray `gorm:"column:room_facilities;type:text[];not null;default:'{}'" json:"room_facilities"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"-"`
}

// TableName mengikat model ke tabel rooms
func (RoomModel) TableName() string { return "rooms" }

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusVacant, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusReserved:
		return true
	}
	return false
}
