// file: internals/features/hostel/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/rooms/dto"
	"hostelku_backend/internals/features/hostel/rooms/model"
	helper "hostelku_backend/internals/helpers"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db, Validate: validator.New()}
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// =======================================================
// ADMIN — CRUD kamar
// =======================================================

func (ctl *RoomController) CreateRoom(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	room := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(room).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Conflict(c, "Nomor kamar "+req.RoomNumber+" sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kamar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kamar dibuat", room)
}

func (ctl *RoomController) ListRooms(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.RoomModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.RoomStatus(status).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "Status kamar tidak dikenal: "+status)
		}
		q = q.Where("room_status = ?", status)
	}
	if floor := c.QueryInt("floor", -1); floor >= 0 {
		q = q.Where("room_floor = ?", floor)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung kamar")
	}

	var rooms []model.RoomModel
	if err := q.Order("room_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	return helper.SuccessWithPagination(c, "OK", rooms, helper.BuildPagination(total, paging, len(rooms)))
}

func (ctl *RoomController) GetRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "room_id tidak valid")
	}

	var room model.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kamar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}
	return helper.Success(c, "OK", room)
}

func (ctl *RoomController) UpdateRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "room_id tidak valid")
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var room model.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kamar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	req.ApplyTo(&room)

	// Jaga invariant: occupied ⟺ ada penghuni, selain itu tenant harus lepas
	if room.RoomStatus == model.RoomStatusOccupied && room.RoomCurrentTenantID == nil {
		return helper.Conflict(c, "Kamar tidak bisa diset occupied tanpa penghuni. Pindahkan penghuni lewat menu tenants.")
	}
	if room.RoomStatus != model.RoomStatusOccupied && room.RoomCurrentTenantID != nil {
		return helper.Conflict(c, "Kamar masih terisi. Pindahkan/keluarkan penghuni dulu sebelum mengubah status.")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kamar")
	}

	return helper.Success(c, "Kamar diperbarui", room)
}

func (ctl *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "room_id tidak valid")
	}

	var room model.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kamar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}
	if room.RoomCurrentTenantID != nil {
		return helper.Conflict(c, "Kamar masih ditempati, tidak bisa dihapus")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kamar")
	}
	return helper.Success(c, "Kamar dihapus", fiber.Map{"room_id": id})
}

// =======================================================
// TENANT — kamar saya
// =======================================================

func (ctl *RoomController) GetMyRoom(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var room model.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&room, "room_current_tenant_id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kamu belum terdaftar di kamar manapun")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}
	return helper.Success(c, "OK", room)
}
