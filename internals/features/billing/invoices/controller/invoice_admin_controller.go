// file: internals/features/billing/invoices/controller/invoice_admin_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/billing/invoices/dto"
	"hostelku_backend/internals/features/billing/invoices/model"
	"hostelku_backend/internals/features/billing/invoices/repository"
	"hostelku_backend/internals/features/billing/invoices/service"
	roomModel "hostelku_backend/internals/features/hostel/rooms/model"
	settingModel "hostelku_backend/internals/features/hostel/settings/model"
	helper "hostelku_backend/internals/helpers"
)

type InvoiceAdminController struct {
	DB       *gorm.DB
	Service  *service.InvoiceService
	Validate *validator.Validate
}

func NewInvoiceAdminController(db *gorm.DB) *InvoiceAdminController {
	return &InvoiceAdminController{
		DB:       db,
		Service:  service.NewInvoiceService(repository.NewInvoiceRepository(db)),
		Validate: validator.New(),
	}
}

// serviceError memetakan error lifecycle/kalkulator ke HTTP response.
// Pesan duplikat & transisi sengaja spesifik, bukan "terjadi kesalahan".
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrDuplicateInvoice):
		return helper.Conflict(c, "Periode ini sudah pernah ditagih untuk kamar tersebut")
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidConfiguration):
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Konfigurasi hostel belum diisi. Lengkapi menu Settings dulu.")
	case errors.Is(err, service.ErrInvoiceNotFound):
		return helper.NotFound(c, "Invoice tidak ditemukan")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses invoice")
	}
}

// =======================================================
// CREATE — kalkulasi + simpan pending
// =======================================================

func (ctl *InvoiceAdminController) CreateInvoice(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Kamar + penghuninya
	var room roomModel.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&room, "room_id = ?", req.InvoiceRoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kamar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}
	if room.RoomCurrentTenantID == nil {
		return helper.Conflict(c, "Kamar "+room.RoomNumber+" tidak berpenghuni, tidak bisa ditagih")
	}

	// Konfigurasi dibaca fresh tepat sebelum kalkulasi — satu snapshot
	// konsisten per invoice (konfigurasi berubah setelah ini tidak ngefek).
	var settings settingModel.HostelSettingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("hostel_setting_singleton = TRUE").
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return serviceError(c, service.ErrInvalidConfiguration)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi")
	}

	items, total, err := service.ComputeInvoice(&room, &settings, service.CalculationInput{
		WaterOld:        req.WaterOld,
		WaterNew:        req.WaterNew,
		ElectricOld:     req.ElectricOld,
		ElectricNew:     req.ElectricNew,
		NumberOfPeople:  req.NumberOfPeople,
		WaterCrateCount: req.WaterCrateCount,
		ExtraItems:      req.ExtraLineItems(),
	})
	if err != nil {
		return serviceError(c, err)
	}

	inv, err := ctl.Service.Create(
		c.UserContext(),
		room.RoomID, room.RoomNumber, *room.RoomCurrentTenantID,
		req.InvoiceMonth, req.InvoiceYear,
		items, total,
	)
	if err != nil {
		return serviceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Invoice dibuat",
		dto.NewInvoiceResponse(*inv, time.Now()))
}

// =======================================================
// READ
// =======================================================

func (ctl *InvoiceAdminController) ListInvoices(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.InvoiceModel{})
	if status := c.Query("status"); status != "" {
		switch model.InvoiceStatus(status) {
		case model.InvoiceStatusPending, model.InvoiceStatusPaid, model.InvoiceStatusCancelled:
			q = q.Where("invoice_status = ?", status)
		case model.InvoiceStatusOverdue:
			// overdue tidak disimpan — diturunkan dari due_date
			q = q.Where("invoice_status = ? AND invoice_due_date < ?", model.InvoiceStatusPending, now)
		default:
			return helper.Error(c, fiber.StatusBadRequest, "Status tidak dikenal: "+status)
		}
	}
	if roomStr := c.Query("room_id"); roomStr != "" {
		roomID, err := uuid.Parse(roomStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "room_id tidak valid")
		}
		q = q.Where("invoice_room_id = ?", roomID)
	}
	if year := c.QueryInt("year", 0); year > 0 {
		q = q.Where("invoice_year = ?", year)
	}
	if month := c.QueryInt("month", 0); month > 0 {
		q = q.Where("invoice_month = ?", month)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung invoice")
	}

	var invoices []model.InvoiceModel
	if err := q.Order("invoice_due_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&invoices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}

	return helper.SuccessWithPagination(c, "OK",
		dto.NewInvoiceResponses(invoices, now),
		helper.BuildPagination(total, paging, len(invoices)))
}

func (ctl *InvoiceAdminController) GetInvoice(c *fiber.Ctx) error {
	inv, err := ctl.Service.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "OK", dto.NewInvoiceResponse(*inv, time.Now()))
}

// GetSummary: agregat dashboard admin. Semua angka turunan dihitung
// read-time dari kolom tersimpan, konsisten dengan EffectiveStatus.
func (ctl *InvoiceAdminController) GetSummary(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	now := time.Now()

	var out dto.InvoiceSummaryResponse

	type sumRow struct {
		Cnt int64
		Amt int64
	}
	var pending sumRow
	if err := db.Model(&model.InvoiceModel{}).
		Select("COUNT(1) AS cnt, COALESCE(SUM(invoice_total_amount),0) AS amt").
		Where("invoice_status = ?", model.InvoiceStatusPending).
		Scan(&pending).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	out.PendingCount = pending.Cnt
	out.PendingTotalAmount = pending.Amt

	if err := db.Model(&model.InvoiceModel{}).
		Where("invoice_status = ? AND invoice_due_date < ?", model.InvoiceStatusPending, now).
		Count(&out.OverdueCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}

	if err := db.Model(&model.InvoiceModel{}).
		Where("invoice_status = ? AND invoice_payment_proof_url IS NOT NULL", model.InvoiceStatusPending).
		Count(&out.AwaitingReviewCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var paid sumRow
	if err := db.Model(&model.InvoiceModel{}).
		Select("COUNT(1) AS cnt, COALESCE(SUM(invoice_total_amount),0) AS amt").
		Where("invoice_status = ? AND invoice_paid_at >= ?", model.InvoiceStatusPaid, startOfMonth).
		Scan(&paid).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	out.PaidThisMonthCount = paid.Cnt
	out.PaidThisMonthAmount = paid.Amt

	return helper.Success(c, "OK", out)
}

// =======================================================
// TRANSISI — konfirmasi bayar / cancel / hapus
// =======================================================

func (ctl *InvoiceAdminController) MarkPaid(c *fiber.Ctx) error {
	inv, err := ctl.Service.MarkPaid(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "Invoice dikonfirmasi lunas", dto.NewInvoiceResponse(*inv, time.Now()))
}

func (ctl *InvoiceAdminController) CancelInvoice(c *fiber.Ctx) error {
	inv, err := ctl.Service.Cancel(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "Invoice dibatalkan", dto.NewInvoiceResponse(*inv, time.Now()))
}

// DeleteInvoice: destruksi permanen, tidak ada undo. Kunci periode
// langsung bisa dipakai ulang setelah ini.
func (ctl *InvoiceAdminController) DeleteInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "Invoice dihapus permanen", fiber.Map{"invoice_id": id})
}
