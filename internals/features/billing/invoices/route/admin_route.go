// file: internals/features/billing/invoices/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/billing/invoices/controller"
	"hostelku_backend/internals/middlewares"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewInvoiceAdminController(db)

	inv := r.Group("/invoices")
	inv.Post("/", ctl.CreateInvoice)
	inv.Get("/", ctl.ListInvoices)
	inv.Get("/summary", ctl.GetSummary)
	inv.Get("/:id", ctl.GetInvoice)
	inv.Post("/:id/mark-paid", ctl.MarkPaid)
	inv.Post("/:id/cancel", ctl.CancelInvoice)
	inv.Delete("/:id", ctl.DeleteInvoice)
}

func TenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewInvoiceTenantController(db)

	inv := r.Group("/invoices")
	inv.Get("/", ctl.ListMyInvoices)
	inv.Post("/:id/payment-proof", middlewares.UploadRateLimiter(), ctl.UploadPaymentProof)
}
