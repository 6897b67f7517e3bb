// file: internals/features/billing/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/billing/invoices/model"
)

// ========== CREATE (form admin) ==========

type ExtraItemInput struct {
	Name   string `json:"name" validate:"required,max=200"`
	Amount int    `json:"amount" validate:"min=0"`
}

type CreateInvoiceRequest struct {
	InvoiceRoomID uuid.UUID `json:"invoice_room_id" validate:"required"`
	InvoiceMonth  int       `json:"invoice_month" validate:"required,min=1,max=12"`
	InvoiceYear   int       `json:"invoice_year" validate:"required,min=2000,max=2100"`

	// Meteran (metode 'unit') — angka mentah dari form
	WaterOld    int `json:"water_old" validate:"min=0"`
	WaterNew    int `json:"water_new" validate:"min=0"`
	ElectricOld int `json:"electric_old" validate:"min=0"`
	ElectricNew int `json:"electric_new" validate:"min=0"`

	// Metode 'person'
	NumberOfPeople int `json:"number_of_people" validate:"min=0"`

	WaterCrateCount int `json:"water_crate_count" validate:"min=0"`

	ExtraItems []ExtraItemInput `json:"extra_items" validate:"omitempty,dive"`
}

func (r *CreateInvoiceRequest) ExtraLineItems() []model.LineItem {
	if len(r.ExtraItems) == 0 {
		return nil
	}
	out := make([]model.LineItem, 0, len(r.ExtraItems))
	for _, it := range r.ExtraItems {
		out = append(out, model.LineItem{Name: it.Name, Amount: it.Amount})
	}
	return out
}

// ========== RESPONSE (dengan status turunan) ==========

type InvoiceResponse struct {
	model.InvoiceModel

	// Turunan saat baca — tidak pernah disimpan
	InvoiceEffectiveStatus  model.InvoiceStatus `json:"invoice_effective_status"`
	InvoiceIsAwaitingReview bool                `json:"invoice_is_awaiting_review"`
}

func NewInvoiceResponse(m model.InvoiceModel, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		InvoiceModel:            m,
		InvoiceEffectiveStatus:  m.EffectiveStatus(now),
		InvoiceIsAwaitingReview: m.IsAwaitingReview(),
	}
}

func NewInvoiceResponses(ms []model.InvoiceModel, now time.Time) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewInvoiceResponse(m, now))
	}
	return out
}

// ========== SUMMARY (dashboard admin) ==========

type InvoiceSummaryResponse struct {
	PendingCount        int64 `json:"pending_count"`
	PendingTotalAmount  int64 `json:"pending_total_amount"`
	OverdueCount        int64 `json:"overdue_count"`
	AwaitingReviewCount int64 `json:"awaiting_review_count"`
	PaidThisMonthCount  int64 `json:"paid_this_month_count"`
	PaidThisMonthAmount int64 `json:"paid_this_month_amount"`
}
