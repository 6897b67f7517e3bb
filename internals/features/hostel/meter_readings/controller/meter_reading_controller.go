// file: internals/features/hostel/meter_readings/controller/meter_reading_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/meter_readings/model"
	helper "hostelku_backend/internals/helpers"
)

type MeterReadingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMeterReadingController(db *gorm.DB) *MeterReadingController {
	return &MeterReadingController{DB: db, Validate: validator.New()}
}

type createMeterReadingRequest struct {
	MeterReadingRoomID        uuid.UUID `json:"meter_reading_room_id" validate:"required"`
	MeterReadingYear          int       `json:"meter_reading_year" validate:"required,min=2000,max=2100"`
	MeterReadingMonth         int       `json:"meter_reading_month" validate:"required,min=1,max=12"`
	MeterReadingWaterValue    int       `json:"meter_reading_water_value" validate:"min=0"`
	MeterReadingElectricValue int       `json:"meter_reading_electric_value" validate:"min=0"`
}

// CreateReading mencatat meteran kamar utk satu periode.
// Duplikat (kamar, tahun, bulan) ditolak oleh unique index.
func (ctl *MeterReadingController) CreateReading(c *fiber.Ctx) error {
	var req createMeterReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	reading := model.MeterReadingModel{
		MeterReadingRoomID:        req.MeterReadingRoomID,
		MeterReadingYear:          req.MeterReadingYear,
		MeterReadingMonth:         req.MeterReadingMonth,
		MeterReadingWaterValue:    req.MeterReadingWaterValue,
		MeterReadingElectricValue: req.MeterReadingElectricValue,
		MeterReadingRecordedBy:    adminID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&reading).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint") {
			return helper.Conflict(c, "Meteran kamar ini untuk periode tersebut sudah dicatat")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat meteran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Meteran dicatat", reading)
}

// ListReadings: filter per kamar dan/atau periode.
// Dipakai form invoice admin untuk prefill angka meteran bulan lalu.
func (ctl *MeterReadingController) ListReadings(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 24, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.MeterReadingModel{})
	if roomStr := c.Query("room_id"); roomStr != "" {
		roomID, err := uuid.Parse(roomStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "room_id tidak valid")
		}
		q = q.Where("meter_reading_room_id = ?", roomID)
	}
	if year := c.QueryInt("year", 0); year > 0 {
		q = q.Where("meter_reading_year = ?", year)
	}
	if month := c.QueryInt("month", 0); month > 0 {
		q = q.Where("meter_reading_month = ?", month)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung pencatatan")
	}

	var readings []model.MeterReadingModel
	if err := q.Order("meter_reading_year DESC, meter_reading_month DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&readings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pencatatan")
	}

	return helper.SuccessWithPagination(c, "OK", readings, helper.BuildPagination(total, paging, len(readings)))
}
