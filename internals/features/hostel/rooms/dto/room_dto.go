// file: internals/features/hostel/rooms/dto/room_dto.go
package dto

import (
	"github.com/lib/pq"

	"hostelku_backend/internals/features/hostel/rooms/model"
)

// ========== CREATE ==========

type CreateRoomRequest struct {
	RoomNumber     string   `json:"room_number" validate:"required,max=20"`
	RoomFloor      int      `json:"room_floor" validate:"min=0"`
	RoomType       string   `json:"room_type" validate:"omitempty,oneof=standard_fan standard_air suite"`
	RoomBasePrice  int      `json:"room_base_price" validate:"min=0"`
	RoomFacilities []string `json:"room_facilities" validate:"omitempty,dive,max=60"`
}

func (r *CreateRoomRequest) ToModel() *model.RoomModel {
	m := &model.RoomModel{
		RoomNumber:     r.RoomNumber,
		RoomFloor:      r.RoomFloor,
		RoomBasePrice:  r.RoomBasePrice,
		RoomStatus:     model.RoomStatusVacant,
		RoomFacilities: pq.StringArray(r.RoomFacilities),
	}
	if r.RoomType != "" {
		m.RoomType = model.RoomType(r.RoomType)
	}
	if m.RoomFacilities == nil {
		m.RoomFacilities = pq.StringArray{}
	}
	return m
}

// ========== UPDATE ==========
// Pointer = field opsional (hanya field yang dikirim yang diubah)

type UpdateRoomRequest struct {
	RoomFloor      *int      `json:"room_floor" validate:"omitempty,min=0"`
	RoomType       *string   `json:"room_type" validate:"omitempty,oneof=standard_fan standard_air suite"`
	RoomBasePrice  *int      `json:"room_base_price" validate:"omitempty,min=0"`
	RoomStatus     *string   `json:"room_status" validate:"omitempty,oneof=vacant occupied maintenance reserved"`
	RoomFacilities *[]string `json:"room_facilities" validate:"omitempty,dive,max=60"`
}

func (r *UpdateRoomRequest) ApplyTo(m *model.RoomModel) {
	if r.RoomFloor != nil {
		m.RoomFloor = *r.RoomFloor
	}
	if r.RoomType != nil {
		m.RoomType = model.RoomType(*r.RoomType)
	}
	if r.RoomBasePrice != nil {
		m.RoomBasePrice = *r.RoomBasePrice
	}
	if r.RoomStatus != nil {
		m.RoomStatus = model.RoomStatus(*r.RoomStatus)
	}
	if r.RoomFacilities != nil {
		m.RoomFacilities = pq.StringArray(*r.RoomFacilities)
	}
}
