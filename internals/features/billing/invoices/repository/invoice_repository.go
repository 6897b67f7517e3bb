// file: internals/features/billing/invoices/repository/invoice_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hostelku_backend/internals/features/billing/invoices/model"
	"hostelku_backend/internals/features/billing/invoices/service"
)

// InvoiceRepository: implementasi GORM dari service.InvoiceStore.
type InvoiceRepository struct {
	DB *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

var _ service.InvoiceStore = (*InvoiceRepository)(nil)

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// Insert = conditional create: PK bentrok → ErrDuplicateInvoice.
// Jangan diganti upsert — satu-invoice-per-periode bergantung di sini.
func (r *InvoiceRepository) Insert(ctx context.Context, inv *model.InvoiceModel) error {
	if err := r.DB.WithContext(ctx).Create(inv).Error; err != nil {
		if isUniqueViolation(err) {
			return service.ErrDuplicateInvoice
		}
		return err
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*model.InvoiceModel, error) {
	var inv model.InvoiceModel
	if err := r.DB.WithContext(ctx).First(&inv, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *model.InvoiceModel) error {
	return r.DB.WithContext(ctx).Save(inv).Error
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.InvoiceModel{}, "invoice_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrInvoiceNotFound
	}
	return nil
}
