// file: internals/features/billing/invoices/service/lifecycle.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/billing/invoices/model"
)

// Invoice jatuh tempo 5 hari setelah dibuat — konstanta kebijakan,
// tidak bisa diatur per invoice.
const DueGraceDays = 5

// InvoiceStore: kontrak persistence utk lifecycle.
// Insert HARUS conditional create (gagal kalau PK sudah ada) — pre-check
// saja tidak cukup karena ada race window antara dua create bersamaan.
type InvoiceStore interface {
	Insert(ctx context.Context, inv *model.InvoiceModel) error
	GetByID(ctx context.Context, id string) (*model.InvoiceModel, error)
	Update(ctx context.Context, inv *model.InvoiceModel) error
	Delete(ctx context.Context, id string) error
}

// InvoiceService menjalankan state machine invoice:
// pending → paid (admin konfirmasi) / cancelled (soft) / dihapus (hard).
// 'overdue' dan 'awaiting review' murni turunan saat baca, bukan transisi.
type InvoiceService struct {
	Store InvoiceStore
	Clock func() time.Time // injectable biar gampang dites
}

func NewInvoiceService(store InvoiceStore) *InvoiceService {
	return &InvoiceService{Store: store, Clock: time.Now}
}

// Create membuat invoice pending baru utk (kamar, bulan, tahun).
// items + total datang dari ComputeInvoice — service ini tidak menghitung
// ulang, hanya menolak kalau total tidak cocok dengan itemnya.
func (s *InvoiceService) Create(
	ctx context.Context,
	roomID uuid.UUID,
	roomNumber string,
	tenantID uuid.UUID,
	month, year int,
	items []model.LineItem,
	total int,
) (*model.InvoiceModel, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("bulan %d di luar rentang 1-12", month)
	}
	if got := model.SumItems(items); got != total {
		return nil, fmt.Errorf("total %d tidak sama dengan jumlah item %d", total, got)
	}

	now := s.Clock()
	inv := &model.InvoiceModel{
		InvoiceID:          model.FormatInvoiceID(year, month, roomNumber),
		InvoiceRoomID:      roomID,
		InvoiceTenantID:    tenantID,
		InvoiceMonth:       month,
		InvoiceYear:        year,
		InvoiceStatus:      model.InvoiceStatusPending,
		InvoiceItems:       items,
		InvoiceTotalAmount: total,
		InvoiceDueDate:     now.AddDate(0, 0, DueGraceDays),
		InvoiceCreatedAt:   now,
		InvoiceUpdatedAt:   now,
	}

	// Store yang memutuskan duplikat (conditional create), bukan pre-check
	if err := s.Store.Insert(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// AttachPaymentProof menempelkan URL bukti transfer dari penghuni.
// Hanya boleh saat pending & belum ada bukti; status TIDAK berubah —
// "awaiting review" diturunkan dari pending + bukti ≠ nil oleh pembaca.
func (s *InvoiceService) AttachPaymentProof(ctx context.Context, invoiceID, proofURL string) (*model.InvoiceModel, error) {
	inv, err := s.Store.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus != model.InvoiceStatusPending {
		return nil, fmt.Errorf("attach bukti ke invoice %s: %w", inv.InvoiceStatus, ErrInvalidTransition)
	}
	if inv.InvoicePaymentProofURL != nil {
		return nil, fmt.Errorf("bukti pembayaran sudah pernah diupload: %w", ErrInvalidTransition)
	}

	inv.InvoicePaymentProofURL = &proofURL
	inv.InvoiceUpdatedAt = s.Clock()
	if err := s.Store.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// MarkPaid: konfirmasi admin, pending → paid + paid_at.
// Dipanggil dua kali harus GAGAL (bukan no-op) supaya piutang tidak
// terhitung dobel di laporan.
func (s *InvoiceService) MarkPaid(ctx context.Context, invoiceID string) (*model.InvoiceModel, error) {
	inv, err := s.Store.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus != model.InvoiceStatusPending {
		return nil, fmt.Errorf("mark paid dari status %s: %w", inv.InvoiceStatus, ErrInvalidTransition)
	}

	now := s.Clock()
	inv.InvoiceStatus = model.InvoiceStatusPaid
	inv.InvoicePaidAt = &now
	inv.InvoiceUpdatedAt = now
	if err := s.Store.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Cancel: soft-cancel (terminal, tetap teraudit). Alternatif dari Delete.
func (s *InvoiceService) Cancel(ctx context.Context, invoiceID string) (*model.InvoiceModel, error) {
	inv, err := s.Store.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus != model.InvoiceStatusPending {
		return nil, fmt.Errorf("cancel dari status %s: %w", inv.InvoiceStatus, ErrInvalidTransition)
	}

	inv.InvoiceStatus = model.InvoiceStatusCancelled
	inv.InvoiceUpdatedAt = s.Clock()
	if err := s.Store.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Delete: hard delete dari status apapun. Tidak ada undo — kunci
// periodenya langsung bebas utk ditagih ulang.
func (s *InvoiceService) Delete(ctx context.Context, invoiceID string) error {
	if _, err := s.Store.GetByID(ctx, invoiceID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, invoiceID)
}
