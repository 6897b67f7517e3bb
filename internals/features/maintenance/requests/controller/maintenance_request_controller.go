// file: internals/features/maintenance/requests/controller/maintenance_request_controller.go
package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	roomModel "hostelku_backend/internals/features/hostel/rooms/model"
	"hostelku_backend/internals/features/maintenance/requests/model"
	helper "hostelku_backend/internals/helpers"
	ossHelper "hostelku_backend/internals/helpers/oss"
)

type MaintenanceRequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMaintenanceRequestController(db *gorm.DB) *MaintenanceRequestController {
	return &MaintenanceRequestController{DB: db, Validate: validator.New()}
}

const maxMaintenanceImages = 3

type createMaintenanceRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=160"`
	Description string `json:"description" form:"description" validate:"omitempty,max=2000"`
	Priority    string `json:"priority" form:"priority" validate:"omitempty,oneof=low medium high"`
}

// =======================================================
// TENANT — buat & lihat laporan
// =======================================================

// CreateRequest menerima multipart (field + foto opsional) ATAU JSON biasa.
// Foto diupload ke OSS dulu, URL-nya disimpan di kolom images.
func (ctl *MaintenanceRequestController) CreateRequest(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req createMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// kamar penghuni saat ini — laporan selalu atas kamar sendiri
	var room roomModel.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&room, "room_current_tenant_id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Conflict(c, "Kamu belum terdaftar di kamar manapun")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	// foto opsional (multipart field "images")
	var fhs []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		fhs = form.File["images"]
		if len(fhs) == 0 {
			fhs = form.File["images[]"]
		}
	}
	if len(fhs) > maxMaintenanceImages {
		return helper.Error(c, fiber.StatusBadRequest, "Maksimal 3 foto per laporan")
	}

	images := pq.StringArray{}
	for _, fh := range fhs {
		url, err := ossHelper.UploadMaintenanceImage(c.UserContext(), room.RoomID, fh)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		images = append(images, url)
	}

	request := model.MaintenanceRequestModel{
		MaintenanceRequestRoomID:      room.RoomID,
		MaintenanceRequestTenantID:    tenantID,
		MaintenanceRequestTitle:       strings.TrimSpace(req.Title),
		MaintenanceRequestDescription: strings.TrimSpace(req.Description),
		MaintenanceRequestImages:      images,
		MaintenanceRequestPriority:    model.MaintenancePriorityMedium,
		MaintenanceRequestStatus:      model.MaintenanceStatusOpen,
	}
	if req.Priority != "" {
		request.MaintenanceRequestPriority = model.MaintenancePriority(req.Priority)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&request).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat laporan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Laporan terkirim", request)
}

func (ctl *MaintenanceRequestController) ListMyRequests(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var requests []model.MaintenanceRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("maintenance_request_tenant_id = ?", tenantID).
		Order("maintenance_request_created_at DESC").
		Find(&requests).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	return helper.Success(c, "OK", requests)
}

// =======================================================
// ADMIN — daftar & proses laporan
// =======================================================

func (ctl *MaintenanceRequestController) ListRequests(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.MaintenanceRequestModel{})
	if status := c.Query("status"); status != "" {
		if !model.MaintenanceStatus(status).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "Status tidak dikenal: "+status)
		}
		q = q.Where("maintenance_request_status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		q = q.Where("maintenance_request_priority = ?", priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}

	var requests []model.MaintenanceRequestModel
	if err := q.Order("maintenance_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&requests).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helper.SuccessWithPagination(c, "OK", requests, helper.BuildPagination(total, paging, len(requests)))
}

type updateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

// UpdateStatus memindahkan status sesuai peta transisi —
// transisi terlarang dijawab 409, bukan diterima diam-diam.
func (ctl *MaintenanceRequestController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "request_id tidak valid")
	}

	var req updateMaintenanceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var request model.MaintenanceRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&request, "maintenance_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Laporan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	next := model.MaintenanceStatus(req.Status)
	if !request.MaintenanceRequestStatus.CanTransitionTo(next) {
		return helper.Conflict(c, "Laporan "+string(request.MaintenanceRequestStatus)+" tidak bisa dipindah ke "+string(next))
	}

	request.MaintenanceRequestStatus = next
	if err := ctl.DB.WithContext(c.UserContext()).Save(&request).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan")
	}

	return helper.Success(c, "Status laporan diperbarui", request)
}
