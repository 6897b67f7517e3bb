// file: internals/features/billing/invoices/model/invoice_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// =========================================================
// ENUM — status invoice
// =========================================================

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"

	// Overdue TIDAK pernah ditulis ke DB — murni turunan dari due_date
	// saat dibaca. Lihat EffectiveStatus.
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// =========================================================
// LINE ITEM — elemen tagihan, urutan = urutan tampil
// =========================================================

type LineItem struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// SumItems: satu-satunya cara menghitung total invoice.
// total_amount tidak boleh dihitung terpisah dari daftar item.
func SumItems(items []LineItem) int {
	total := 0
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// =========================================================
// MODEL
// =========================================================

// InvoiceModel merepresentasikan tabel invoices.
// PK-nya string deterministik INV-{year}{month:02}-{room_number}, sekaligus
// kunci unik "satu invoice per kamar per periode". Tidak ada soft delete:
// hapus invoice = koreksi data, kunci periodenya harus bisa dipakai lagi.
type InvoiceModel struct {
	InvoiceID string `gorm:"column:invoice_id;type:varchar(40);primaryKey" json:"invoice_id"`

	InvoiceRoomID   uuid.UUID `gorm:"column:invoice_room_id;type:uuid;not null;index" json:"invoice_room_id"`
	InvoiceTenantID uuid.UUID `gorm:"column:invoice_tenant_id;type:uuid;not null;index" json:"invoice_tenant_id"`

	InvoiceMonth int `gorm:"column:invoice_month;not null;check:invoice_month>=1 AND invoice_month<=12" json:"invoice_month"`
	InvoiceYear  int `gorm:"column:invoice_year;not null" json:"invoice_year"`

	InvoiceStatus InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:'pending';index" json:"invoice_status"`

	// Rincian tagihan — urutan insert = urutan tampil, jangan di-sort
	InvoiceItems datatypes.JSONSlice[LineItem] `gorm:"column:invoice_items;type:jsonb;not null" json:"invoice_items"`

	// Selalu = SumItems(InvoiceItems). Sekali tersimpan tidak pernah
	// dihitung ulang — invoice adalah catatan finansial immutable.
	InvoiceTotalAmount int `gorm:"column:invoice_total_amount;not null;check:invoice_total_amount>=0" json:"invoice_total_amount"`

	InvoiceDueDate time.Time `gorm:"column:invoice_due_date;not null" json:"invoice_due_date"`

	InvoicePaymentProofURL *string    `gorm:"column:invoice_payment_proof_url;type:text" json:"invoice_payment_proof_url"`
	InvoicePaidAt          *time.Time `gorm:"column:invoice_paid_at" json:"invoice_paid_at"`

	InvoiceCreatedAt time.Time `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `gorm:"column:invoice_updated_at;autoUpdateTime" json:"invoice_updated_at"`
}

// TableName mengikat model ke tabel invoices
func (InvoiceModel) TableName() string { return "invoices" }

// FormatInvoiceID menghasilkan kunci periode: INV-{year}{month:02}-{room_number}.
// Format ini dipakai sebagai PK, harus stabil bit-for-bit.
func FormatInvoiceID(year, month int, roomNumber string) string {
	return fmt.Sprintf("INV-%d%02d-%s", year, month, roomNumber)
}

// =========================================================
// DERIVED STATE — dihitung saat baca, tidak pernah disimpan
// =========================================================

// IsOverdue: lewat jatuh tempo & masih pending
func (m *InvoiceModel) IsOverdue(at time.Time) bool {
	return m.InvoiceStatus == InvoiceStatusPending && at.After(m.InvoiceDueDate)
}

// IsAwaitingReview: penghuni sudah upload bukti, admin belum konfirmasi
func (m *InvoiceModel) IsAwaitingReview() bool {
	return m.InvoiceStatus == InvoiceStatusPending && m.InvoicePaymentProofURL != nil
}

// EffectiveStatus: status utk ditampilkan (pending yang telat → overdue)
func (m *InvoiceModel) EffectiveStatus(at time.Time) InvoiceStatus {
	if m.IsOverdue(at) {
		return InvoiceStatusOverdue
	}
	return m.InvoiceStatus
}
