// file: internals/features/hostel/tenants/controller/tenant_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	roomModel "hostelku_backend/internals/features/hostel/rooms/model"
	"hostelku_backend/internals/features/hostel/tenants/dto"
	"hostelku_backend/internals/features/hostel/tenants/model"
	helper "hostelku_backend/internals/helpers"
)

type TenantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db, Validate: validator.New()}
}

// =======================================================
// INTERNAL — occupy/vacate dalam transaksi
// Invariant: tenant_current_room_id ⟺ room_current_tenant_id.
// Dua sisi selalu ditulis dalam satu transaksi, tidak pernah terpisah.
// =======================================================

func occupyRoom(tx *gorm.DB, tenant *model.TenantModel, roomID uuid.UUID) error {
	var room roomModel.RoomModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, "room_id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kamar tujuan tidak ditemukan")
		}
		return err
	}
	if room.RoomStatus != roomModel.RoomStatusVacant || room.RoomCurrentTenantID != nil {
		return fiber.NewError(fiber.StatusConflict, "Kamar "+room.RoomNumber+" tidak kosong")
	}

	room.RoomStatus = roomModel.RoomStatusOccupied
	room.RoomCurrentTenantID = &tenant.TenantID
	if err := tx.Save(&room).Error; err != nil {
		return err
	}

	tenant.TenantCurrentRoomID = &room.RoomID
	return tx.Save(tenant).Error
}

func vacateRoom(tx *gorm.DB, tenant *model.TenantModel) error {
	if tenant.TenantCurrentRoomID == nil {
		return nil
	}

	var room roomModel.RoomModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, "room_id = ?", *tenant.TenantCurrentRoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// kamar sudah hilang — cukup lepas referensi di tenant
			tenant.TenantCurrentRoomID = nil
			return tx.Save(tenant).Error
		}
		return err
	}

	room.RoomStatus = roomModel.RoomStatusVacant
	room.RoomCurrentTenantID = nil
	if err := tx.Save(&room).Error; err != nil {
		return err
	}

	tenant.TenantCurrentRoomID = nil
	return tx.Save(tenant).Error
}

// =======================================================
// ADMIN — CRUD penghuni
// =======================================================

func (ctl *TenantController) CreateTenant(c *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	tenant := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}
		if req.TenantRoomID != nil {
			return occupyRoom(tx, tenant, *req.TenantRoomID)
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat penghuni")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penghuni dibuat", tenant)
}

func (ctl *TenantController) ListTenants(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TenantModel{})
	if name := c.Query("q"); name != "" {
		q = q.Where("tenant_full_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung penghuni")
	}

	var tenants []model.TenantModel
	if err := q.Order("tenant_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&tenants).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil penghuni")
	}

	return helper.SuccessWithPagination(c, "OK", tenants, helper.BuildPagination(total, paging, len(tenants)))
}

func (ctl *TenantController) GetTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "tenant_id tidak valid")
	}

	var tenant model.TenantModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&tenant, "tenant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penghuni tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil penghuni")
	}
	return helper.Success(c, "OK", tenant)
}

func (ctl *TenantController) UpdateTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "tenant_id tidak valid")
	}

	var req dto.UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tenant model.TenantModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&tenant, "tenant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penghuni tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil penghuni")
	}

	req.ApplyTo(&tenant)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&tenant).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan penghuni")
	}
	return helper.Success(c, "Penghuni diperbarui", tenant)
}

// MoveRoom memindahkan penghuni: kosongkan kamar lama + tempati kamar baru
// dalam SATU transaksi. new_room_id null = check-out.
func (ctl *TenantController) MoveRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "tenant_id tidak valid")
	}

	var req dto.MoveRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var tenant model.TenantModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tenant, "tenant_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan")
			}
			return err
		}

		if req.NewRoomID != nil && tenant.TenantCurrentRoomID != nil &&
			*req.NewRoomID == *tenant.TenantCurrentRoomID {
			return fiber.NewError(fiber.StatusConflict, "Penghuni sudah di kamar tersebut")
		}

		if err := vacateRoom(tx, &tenant); err != nil {
			return err
		}
		if req.NewRoomID != nil {
			return occupyRoom(tx, &tenant, *req.NewRoomID)
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memindahkan penghuni")
	}

	msg := "Penghuni dipindahkan"
	if req.NewRoomID == nil {
		msg = "Penghuni check-out"
	}
	return helper.Success(c, msg, tenant)
}

// DeleteTenant: kosongkan kamar dulu, baru soft-delete penghuni (satu transaksi)
func (ctl *TenantController) DeleteTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "tenant_id tidak valid")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var tenant model.TenantModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tenant, "tenant_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan")
			}
			return err
		}
		if err := vacateRoom(tx, &tenant); err != nil {
			return err
		}
		return tx.Delete(&tenant).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus penghuni")
	}

	return helper.Success(c, "Penghuni dihapus", fiber.Map{"tenant_id": id})
}

// =======================================================
// TENANT — profil saya
// =======================================================

func (ctl *TenantController) GetMyProfile(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var tenant model.TenantModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Data penghuni tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.Success(c, "OK", tenant)
}
