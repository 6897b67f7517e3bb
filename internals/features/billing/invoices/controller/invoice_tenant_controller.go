// file: internals/features/billing/invoices/controller/invoice_tenant_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/billing/invoices/dto"
	"hostelku_backend/internals/features/billing/invoices/model"
	"hostelku_backend/internals/features/billing/invoices/repository"
	"hostelku_backend/internals/features/billing/invoices/service"
	helper "hostelku_backend/internals/helpers"
	ossHelper "hostelku_backend/internals/helpers/oss"
)

type InvoiceTenantController struct {
	DB      *gorm.DB
	Service *service.InvoiceService
}

func NewInvoiceTenantController(db *gorm.DB) *InvoiceTenantController {
	return &InvoiceTenantController{
		DB:      db,
		Service: service.NewInvoiceService(repository.NewInvoiceRepository(db)),
	}
}

// ListMyInvoices: semua tagihan milik penghuni yang login
func (ctl *InvoiceTenantController) ListMyInvoices(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var invoices []model.InvoiceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("invoice_tenant_id = ?", tenantID).
		Order("invoice_due_date DESC").
		Find(&invoices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	return helper.Success(c, "OK", dto.NewInvoiceResponses(invoices, time.Now()))
}

// UploadPaymentProof: multipart image → OSS → attach ke invoice.
// Upload dulu baru attach; kalau attach ditolak (status berubah di tengah),
// file yatim di OSS dibersihkan best-effort.
func (ctl *InvoiceTenantController) UploadPaymentProof(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	invoiceID := c.Params("id")
	inv, err := ctl.Service.Store.GetByID(c.UserContext(), invoiceID)
	if err != nil {
		return serviceError(c, err)
	}
	if inv.InvoiceTenantID != tenantID {
		return helper.Error(c, fiber.StatusForbidden, "Tagihan ini bukan milikmu")
	}
	// cek awal biar tidak upload sia-sia; keputusan final tetap di service
	if inv.InvoiceStatus != model.InvoiceStatusPending || inv.InvoicePaymentProofURL != nil {
		return serviceError(c, service.ErrInvalidTransition)
	}

	fh, err := c.FormFile("payment_proof")
	if err != nil {
		fh, err = c.FormFile("file")
	}
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "File bukti pembayaran tidak ditemukan (field: payment_proof)")
	}

	url, err := ossHelper.UploadPaymentProof(c.UserContext(), invoiceID, fh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	updated, err := ctl.Service.AttachPaymentProof(c.UserContext(), invoiceID, url)
	if err != nil {
		// bersihkan file yatim, jangan ganggu response utama
		if svc, e := ossHelper.NewOSSServiceFromEnv(""); e == nil {
			_ = svc.DeleteByPublicURL(c.UserContext(), url)
		}
		return serviceError(c, err)
	}

	return helper.Success(c, "Bukti pembayaran terkirim, menunggu konfirmasi admin",
		dto.NewInvoiceResponse(*updated, time.Now()))
}
