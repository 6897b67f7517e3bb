// file: internals/features/hostel/settings/controller/hostel_setting_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostelku_backend/internals/features/hostel/settings/dto"
	"hostelku_backend/internals/features/hostel/settings/model"
	helper "hostelku_backend/internals/helpers"
)

type HostelSettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHostelSettingController(db *gorm.DB) *HostelSettingController {
	return &HostelSettingController{DB: db, Validate: validator.New()}
}

// GetSetting mengambil konfigurasi aktif (single row).
// Dipakai admin form dan portal penghuni (info rekening).
func (ctl *HostelSettingController) GetSetting(c *fiber.Ctx) error {
	var setting model.HostelSettingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("hostel_setting_singleton = TRUE").
		First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Konfigurasi hostel belum diisi")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi")
	}
	return helper.Success(c, "OK", setting)
}

// UpsertSetting menyimpan konfigurasi (create kalau belum ada, update kalau sudah).
// Selalu snapshot penuh — tidak ada partial update supaya kalkulasi invoice
// selalu membaca satu konfigurasi konsisten.
func (ctl *HostelSettingController) UpsertSetting(c *fiber.Ctx) error {
	var req dto.UpsertHostelSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var setting model.HostelSettingModel
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// lock row singleton biar dua admin tidak saling timpa
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("hostel_setting_singleton = TRUE").
			First(&setting).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			req.ApplyTo(&setting)
			setting.HostelSettingSingleton = true
			return tx.Create(&setting).Error
		case err != nil:
			return err
		default:
			req.ApplyTo(&setting)
			return tx.Save(&setting).Error
		}
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan konfigurasi")
	}

	return helper.Success(c, "Konfigurasi tersimpan", setting)
}
