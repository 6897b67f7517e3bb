// file: internals/features/maintenance/requests/model/maintenance_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — prioritas & status
// =========================================================

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityHigh   MaintenancePriority = "high"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
	MaintenanceStatusClosed     MaintenanceStatus = "closed"
)

// Transisi status maju saja, tidak ada mundur.
// open boleh langsung closed (laporan duplikat/salah).
var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceStatusOpen:       {MaintenanceStatusInProgress, MaintenanceStatusResolved, MaintenanceStatusClosed},
	MaintenanceStatusInProgress: {MaintenanceStatusResolved, MaintenanceStatusClosed},
	MaintenanceStatusResolved:   {MaintenanceStatusClosed},
	MaintenanceStatusClosed:     {},
}

// CanTransitionTo: pola state machine yang sama dengan invoice —
// operasi dari status terlarang ditolak, bukan di-skip diam-diam.
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	for _, allowed := range maintenanceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusResolved, MaintenanceStatusClosed:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type MaintenanceRequestModel struct {
	MaintenanceRequestID uuid.UUID `gorm:"column:maintenance_request_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"maintenance_request_id"`

	MaintenanceRequestRoomID   uuid.UUID `gorm:"column:maintenance_request_room_id;type:uuid;not null;index" json:"maintenance_request_room_id"`
	MaintenanceRequestTenantID uuid.UUID `gorm:"column:maintenance_request_tenant_id;type:uuid;not null;index" json:"maintenance_request_tenant_id"`

	MaintenanceRequestTitle       string `gorm:"column:maintenance_request_title;type:varchar(160);not null" json:"maintenance_request_title"`
	MaintenanceRequestDescription string `gorm:"column:maintenance_request_description;type:text;not null;default:''" json:"maintenance_request_description"`

	MaintenanceRequestImages pq.StringArray `gorm:"column:maintenance_request_images;type:text[];not null;default:'{}'" json:"maintenance_request_images"`

	MaintenanceRequestPriority MaintenancePriority `gorm:"column:maintenance_request_priority;type:varchar(10);not null;default:'medium'" json:"maintenance_request_priority"`
	MaintenanceRequestStatus   MaintenanceStatus   `gorm:"column:maintenance_request_status;type:varchar(20);not null;default:'open';index" json:"maintenance_request_status"`

	MaintenanceRequestCreatedAt time.Time      `gorm:"column:maintenance_request_created_at;autoCreateTime" json:"maintenance_request_created_at"`
	MaintenanceRequestUpdatedAt time.Time      `gorm:"column:maintenance_request_updated_at;autoUpdateTime" json:"maintenance_request_updated_at"`
	MaintenanceRequestDeletedAt gorm.DeletedAt `gorm:"column:maintenance_request_deleted_at;index" json:"-"`
}

// TableName mengikat model ke tabel maintenance_requests
func (MaintenanceRequestModel) TableName() string { return "maintenance_requests" }
