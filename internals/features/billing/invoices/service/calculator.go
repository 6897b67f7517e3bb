// file: internals/features/billing/invoices/service/calculator.go
package service

import (
	"fmt"

	"hostelku_backend/internals/features/billing/invoices/model"
	roomModel "hostelku_backend/internals/features/hostel/rooms/model"
	settingModel "hostelku_backend/internals/features/hostel/settings/model"
)

// Harga air minum per krat — konstanta kebijakan, bukan konfigurasi
const WaterCratePrice = 50

// CalculationInput: semua angka mentah dari form admin.
// Angka meteran dipercaya apa adanya; selisih negatif (meteran mundur /
// salah input) TIDAK jadi error — biayanya di-clamp ke 0 tapi angka
// mentahnya tetap tampil di label item supaya bisa diaudit.
type CalculationInput struct {
	WaterOld int
	WaterNew int

	ElectricOld int
	ElectricNew int

	// Metode 'person': jumlah penghuni diisi admin, bukan dihitung dari data tenant
	NumberOfPeople int

	WaterCrateCount int

	// Item tambahan bebas — masuk apa adanya sesuai urutan input
	ExtraItems []model.LineItem
}

// ComputeInvoice: fungsi murni, tanpa side effect, aman dipanggil concurrent.
// Urutan item tetap: sewa, air, listrik, krat (kalau ada), extra (urutan input).
// Total SELALU dijumlah dari daftar item yang dihasilkan, tidak pernah
// dihitung lewat jalur lain.
func ComputeInvoice(
	room *roomModel.RoomModel,
	settings *settingModel.HostelSettingModel,
	in CalculationInput,
) ([]model.LineItem, int, error) {
	if settings == nil {
		return nil, 0, ErrInvalidConfiguration
	}
	if room == nil {
		return nil, 0, fmt.Errorf("kamar tidak boleh nil")
	}

	items := make([]model.LineItem, 0, 4+len(in.ExtraItems))

	// 1) Sewa kamar — selalu item pertama, nilainya tidak diubah
	items = append(items, model.LineItem{
		Name:   "Sewa kamar",
		Amount: room.RoomBasePrice,
	})

	// 2) Air — per orang (flat) atau per unit meteran
	if settings.HostelSettingWaterCalculationMethod == settingModel.WaterMethodPerson {
		people := in.NumberOfPeople
		if people < 1 {
			people = 1 // form default: minimal 1 orang
		}
		rate := settings.WaterPricePerPersonOrDefault()
		items = append(items, model.LineItem{
			Name:   fmt.Sprintf("Air (flat %d orang x %d)", people, rate),
			Amount: people * rate,
		})
	} else {
		usage := in.WaterNew - in.WaterOld
		items = append(items, model.LineItem{
			// label pakai usage mentah (bisa negatif) — biaya yang di-clamp
			Name:   fmt.Sprintf("Air (meteran %d → %d, pakai %d unit)", in.WaterOld, in.WaterNew, usage),
			Amount: clampNonNegative(usage * settings.HostelSettingWaterUnitPrice),
		})
	}

	// 3) Listrik — selalu per unit meteran, pola clamp sama dengan air
	elecUsage := in.ElectricNew - in.ElectricOld
	items = append(items, model.LineItem{
		Name:   fmt.Sprintf("Listrik (meteran %d → %d, pakai %d unit)", in.ElectricOld, in.ElectricNew, elecUsage),
		Amount: clampNonNegative(elecUsage * settings.HostelSettingElectricUnitPrice),
	})

	// 4) Air minum per krat — dilewati total kalau 0
	if in.WaterCrateCount > 0 {
		items = append(items, model.LineItem{
			Name:   fmt.Sprintf("Air minum (%d krat)", in.WaterCrateCount),
			Amount: in.WaterCrateCount * WaterCratePrice,
		})
	}

	// 5) Extra items apa adanya (dipercaya sesuai input admin)
	items = append(items, in.ExtraItems...)

	return items, model.SumItems(items), nil
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
