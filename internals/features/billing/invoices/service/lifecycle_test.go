package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hostelku_backend/internals/features/billing/invoices/model"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, inv *model.InvoiceModel) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*model.InvoiceModel, error) {
	args := m.Called(ctx, id)
	if inv, ok := args.Get(0).(*model.InvoiceModel); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, inv *model.InvoiceModel) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var frozenNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func newTestService(store *mockStore) *InvoiceService {
	svc := NewInvoiceService(store)
	svc.Clock = func() time.Time { return frozenNow }
	return svc
}

func pendingInvoice() *model.InvoiceModel {
	return &model.InvoiceModel{
		InvoiceID:          "INV-202511-101",
		InvoiceRoomID:      uuid.New(),
		InvoiceTenantID:    uuid.New(),
		InvoiceMonth:       11,
		InvoiceYear:        2025,
		InvoiceStatus:      model.InvoiceStatusPending,
		InvoiceItems:       []model.LineItem{{Name: "Sewa kamar", Amount: 3500}},
		InvoiceTotalAmount: 3500,
		InvoiceDueDate:     frozenNow.AddDate(0, 0, DueGraceDays),
	}
}

// ===== Create =====

func TestCreate_BuildsPendingInvoiceWithDueDate(t *testing.T) {
	store := new(mockStore)
	store.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(store)

	items := []model.LineItem{
		{Name: "Sewa kamar", Amount: 3500},
		{Name: "Listrik (meteran 0 → 50, pakai 50 unit)", Amount: 400},
	}
	inv, err := svc.Create(context.Background(), uuid.New(), "101", uuid.New(), 11, 2025, items, 3900)
	require.NoError(t, err)

	assert.Equal(t, "INV-202511-101", inv.InvoiceID)
	assert.Equal(t, model.InvoiceStatusPending, inv.InvoiceStatus)
	assert.Equal(t, frozenNow.AddDate(0, 0, 5), inv.InvoiceDueDate)
	assert.Nil(t, inv.InvoicePaidAt)
	assert.Nil(t, inv.InvoicePaymentProofURL)
	store.AssertExpectations(t)
}

func TestCreate_RejectsInvalidMonth(t *testing.T) {
	svc := newTestService(new(mockStore))
	for _, month := range []int{0, 13, -1} {
		_, err := svc.Create(context.Background(), uuid.New(), "101", uuid.New(), month, 2025, nil, 0)
		assert.Error(t, err)
	}
}

func TestCreate_RejectsMismatchedTotal(t *testing.T) {
	svc := newTestService(new(mockStore))
	items := []model.LineItem{{Name: "Sewa kamar", Amount: 3500}}
	_, err := svc.Create(context.Background(), uuid.New(), "101", uuid.New(), 11, 2025, items, 9999)
	assert.Error(t, err)
}

func TestCreate_PropagatesDuplicateFromStore(t *testing.T) {
	store := new(mockStore)
	store.On("Insert", mock.Anything, mock.Anything).Return(ErrDuplicateInvoice)
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), uuid.New(), "101", uuid.New(), 11, 2025, nil, 0)
	assert.ErrorIs(t, err, ErrDuplicateInvoice)
}

// ===== AttachPaymentProof =====

func TestAttachPaymentProof_SetsURLWithoutChangingStatus(t *testing.T) {
	inv := pendingInvoice()
	store := new(mockStore)
	store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	store.On("Update", mock.Anything, inv).Return(nil)
	svc := newTestService(store)

	got, err := svc.AttachPaymentProof(context.Background(), inv.InvoiceID, "https://cdn.example.com/proof.webp")
	require.NoError(t, err)
	require.NotNil(t, got.InvoicePaymentProofURL)
	assert.Equal(t, "https://cdn.example.com/proof.webp", *got.InvoicePaymentProofURL)
	assert.Equal(t, model.InvoiceStatusPending, got.InvoiceStatus)
	assert.True(t, got.IsAwaitingReview())
}

func TestAttachPaymentProof_RejectsSecondUpload(t *testing.T) {
	inv := pendingInvoice()
	existing := "https://cdn.example.com/first.webp"
	inv.InvoicePaymentProofURL = &existing

	store := new(mockStore)
	store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	svc := newTestService(store)

	_, err := svc.AttachPaymentProof(context.Background(), inv.InvoiceID, "https://cdn.example.com/second.webp")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAttachPaymentProof_RejectsNonPending(t *testing.T) {
	for _, status := range []model.InvoiceStatus{model.InvoiceStatusPaid, model.InvoiceStatusCancelled} {
		inv := pendingInvoice()
		inv.InvoiceStatus = status

		store := new(mockStore)
		store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
		svc := newTestService(store)

		_, err := svc.AttachPaymentProof(context.Background(), inv.InvoiceID, "https://cdn.example.com/proof.webp")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

// ===== MarkPaid =====

func TestMarkPaid_SetsPaidAt(t *testing.T) {
	inv := pendingInvoice()
	store := new(mockStore)
	store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	store.On("Update", mock.Anything, inv).Return(nil)
	svc := newTestService(store)

	got, err := svc.MarkPaid(context.Background(), inv.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, got.InvoiceStatus)
	require.NotNil(t, got.InvoicePaidAt)
	assert.Equal(t, frozenNow, *got.InvoicePaidAt)
}

func TestMarkPaid_TwiceFails(t *testing.T) {
	inv := pendingInvoice()
	inv.InvoiceStatus = model.InvoiceStatusPaid
	paidAt := frozenNow.Add(-time.Hour)
	inv.InvoicePaidAt = &paidAt

	store := new(mockStore)
	store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	svc := newTestService(store)

	_, err := svc.MarkPaid(context.Background(), inv.InvoiceID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkPaid_OnCancelledFails(t *testing.T) {
	inv := pendingInvoice()
	inv.InvoiceStatus = model.InvoiceStatusCancelled

	store := new(mockStore)
	store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	svc := newTestService(store)

	_, err := svc.MarkPaid(context.Background(), inv.InvoiceID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// ===== Cancel =====

func TestCancel_PendingOnly(t *testing.T) {
	inv := pendingInvoice()
	store := new(mockStore)
	store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	store.On("Update", mock.Anything, inv).Return(nil)
	svc := newTestService(store)

	got, err := svc.Cancel(context.Background(), inv.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusCancelled, got.InvoiceStatus)
}

func TestCancel_OnPaidFails(t *testing.T) {
	inv := pendingInvoice()
	inv.InvoiceStatus = model.InvoiceStatusPaid

	store := new(mockStore)
	store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
	svc := newTestService(store)

	_, err := svc.Cancel(context.Background(), inv.InvoiceID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// ===== Delete =====

func TestDelete_AllowedFromAnyStatus(t *testing.T) {
	for _, status := range []model.InvoiceStatus{
		model.InvoiceStatusPending,
		model.InvoiceStatusPaid,
		model.InvoiceStatusCancelled,
	} {
		inv := pendingInvoice()
		inv.InvoiceStatus = status

		store := new(mockStore)
		store.On("GetByID", mock.Anything, inv.InvoiceID).Return(inv, nil)
		store.On("Delete", mock.Anything, inv.InvoiceID).Return(nil)
		svc := newTestService(store)

		assert.NoError(t, svc.Delete(context.Background(), inv.InvoiceID))
		store.AssertExpectations(t)
	}
}

func TestDelete_NotFound(t *testing.T) {
	store := new(mockStore)
	store.On("GetByID", mock.Anything, "INV-202511-999").Return(nil, ErrInvoiceNotFound)
	svc := newTestService(store)

	err := svc.Delete(context.Background(), "INV-202511-999")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
