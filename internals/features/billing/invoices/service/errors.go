// file: internals/features/billing/invoices/service/errors.go
package service

import "errors"

var (
	// ErrInvalidConfiguration: hostel_settings belum diisi saat kalkulasi.
	// Tidak ada harga default yang masuk akal, jadi fail keras.
	ErrInvalidConfiguration = errors.New("konfigurasi hostel belum diisi, kalkulasi invoice dibatalkan")

	// ErrDuplicateInvoice: periode (kamar, bulan, tahun) sudah pernah ditagih.
	ErrDuplicateInvoice = errors.New("invoice untuk kamar & periode ini sudah ada")

	// ErrInvalidTransition: operasi lifecycle dari status yang tidak mengizinkan
	// (mis. mark-paid dua kali, attach bukti ke invoice paid).
	ErrInvalidTransition = errors.New("status invoice tidak mengizinkan operasi ini")

	// ErrInvoiceNotFound: 404 standar.
	ErrInvoiceNotFound = errors.New("invoice tidak ditemukan")
)
