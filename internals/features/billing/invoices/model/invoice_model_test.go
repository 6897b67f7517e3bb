package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceID(t *testing.T) {
	cases := []struct {
		year, month int
		roomNumber  string
		want        string
	}{
		{2025, 11, "101", "INV-202511-101"},
		{2025, 1, "101", "INV-202501-101"},
		{2026, 9, "A-12", "INV-202609-A-12"},
		{2025, 12, "B203", "INV-202512-B203"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatInvoiceID(c.year, c.month, c.roomNumber))
	}
}

func TestSumItems(t *testing.T) {
	assert.Equal(t, 0, SumItems(nil))
	assert.Equal(t, 0, SumItems([]LineItem{}))
	assert.Equal(t, 4270, SumItems([]LineItem{
		{Name: "Sewa kamar", Amount: 3500},
		{Name: "Air", Amount: 270},
		{Name: "Listrik", Amount: 400},
		{Name: "Air minum", Amount: 100},
	}))
	// diskon boleh negatif, total mengikuti
	assert.Equal(t, 3000, SumItems([]LineItem{
		{Name: "Sewa kamar", Amount: 3500},
		{Name: "Diskon", Amount: -500},
	}))
}

func TestDerivedState(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	proof := "https://cdn.example.com/proof.webp"

	t.Run("pending before due date", func(t *testing.T) {
		inv := &InvoiceModel{InvoiceStatus: InvoiceStatusPending, InvoiceDueDate: now.AddDate(0, 0, 2)}
		assert.False(t, inv.IsOverdue(now))
		assert.Equal(t, InvoiceStatusPending, inv.EffectiveStatus(now))
	})

	t.Run("pending past due date is overdue", func(t *testing.T) {
		inv := &InvoiceModel{InvoiceStatus: InvoiceStatusPending, InvoiceDueDate: now.AddDate(0, 0, -1)}
		assert.True(t, inv.IsOverdue(now))
		assert.Equal(t, InvoiceStatusOverdue, inv.EffectiveStatus(now))
	})

	t.Run("paid never overdue", func(t *testing.T) {
		inv := &InvoiceModel{InvoiceStatus: InvoiceStatusPaid, InvoiceDueDate: now.AddDate(0, 0, -30)}
		assert.False(t, inv.IsOverdue(now))
		assert.Equal(t, InvoiceStatusPaid, inv.EffectiveStatus(now))
	})

	t.Run("awaiting review needs pending plus proof", func(t *testing.T) {
		inv := &InvoiceModel{InvoiceStatus: InvoiceStatusPending}
		assert.False(t, inv.IsAwaitingReview())

		inv.InvoicePaymentProofURL = &proof
		assert.True(t, inv.IsAwaitingReview())

		inv.InvoiceStatus = InvoiceStatusPaid
		assert.False(t, inv.IsAwaitingReview())
	})

	t.Run("overdue and awaiting review can overlap", func(t *testing.T) {
		inv := &InvoiceModel{
			InvoiceStatus:          InvoiceStatusPending,
			InvoiceDueDate:         now.AddDate(0, 0, -3),
			InvoicePaymentProofURL: &proof,
		}
		assert.True(t, inv.IsOverdue(now))
		assert.True(t, inv.IsAwaitingReview())
	})
}
