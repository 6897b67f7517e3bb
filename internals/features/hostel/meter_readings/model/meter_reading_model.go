// file: internals/features/hostel/meter_readings/model/meter_reading_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MeterReadingModel merepresentasikan tabel meter_readings:
// pencatatan meteran air & listrik per kamar per periode.
// Satu kamar hanya punya satu pencatatan per (year, month).
type MeterReadingModel struct {
	MeterReadingID uuid.UUID `gorm:"column:meter_reading_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"meter_reading_id"`

	MeterReadingRoomID uuid.UUID `gorm:"column:meter_reading_room_id;type:uuid;not null;index;uniqueIndex:uniq_reading_room_period,priority:1" json:"meter_reading_room_id"`
	MeterReadingYear   int       `gorm:"column:meter_reading_year;not null;uniqueIndex:uniq_reading_room_period,priority:2" json:"meter_reading_year"`
	MeterReadingMonth  int       `gorm:"column:meter_reading_month;not null;check:meter_reading_month>=1 AND meter_reading_month<=12;uniqueIndex:uniq_reading_room_period,priority:3" json:"meter_reading_month"`

	MeterReadingWaterValue    int `gorm:"column:meter_reading_water_value;not null;check:meter_reading_water_value>=0" json:"meter_reading_water_value"`
	MeterReadingElectricValue int `gorm:"column:meter_reading_electric_value;not null;check:meter_reading_electric_value>=0" json:"meter_reading_electric_value"`

	MeterReadingRecordedBy uuid.UUID `gorm:"column:meter_reading_recorded_by;type:uuid;not null" json:"meter_reading_recorded_by"`
	MeterReadingRecordedAt time.Time `gorm:"column:meter_reading_recorded_at;autoCreateTime" json:"meter_reading_recorded_at"`
}

// TableName mengikat model ke tabel meter_readings
func (MeterReadingModel) TableName() string { return "meter_readings" }
