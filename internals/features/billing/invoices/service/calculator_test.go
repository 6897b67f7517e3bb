package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelku_backend/internals/features/billing/invoices/model"
	roomModel "hostelku_backend/internals/features/hostel/rooms/model"
	settingModel "hostelku_backend/internals/features/hostel/settings/model"
)

func testRoom(basePrice int) *roomModel.RoomModel {
	return &roomModel.RoomModel{
		RoomNumber:    "101",
		RoomBasePrice: basePrice,
	}
}

func unitSettings(waterPrice, electricPrice int) *settingModel.HostelSettingModel {
	return &settingModel.HostelSettingModel{
		HostelSettingWaterCalculationMethod: settingModel.WaterMethodUnit,
		HostelSettingWaterUnitPrice:         waterPrice,
		HostelSettingElectricUnitPrice:      electricPrice,
	}
}

func personSettings(pricePerPerson, electricPrice int) *settingModel.HostelSettingModel {
	return &settingModel.HostelSettingModel{
		HostelSettingWaterCalculationMethod: settingModel.WaterMethodPerson,
		HostelSettingWaterPricePerPerson:    pricePerPerson,
		HostelSettingElectricUnitPrice:      electricPrice,
	}
}

func TestComputeInvoice_NilSettings(t *testing.T) {
	_, _, err := ComputeInvoice(testRoom(3500), nil, CalculationInput{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestComputeInvoice_RentIsFirstItemUnchanged(t *testing.T) {
	items, _, err := ComputeInvoice(testRoom(3500), unitSettings(10, 50), CalculationInput{})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, "Sewa kamar", items[0].Name)
	assert.Equal(t, 3500, items[0].Amount)
}

func TestComputeInvoice_WaterByMeter(t *testing.T) {
	items, _, err := ComputeInvoice(testRoom(0), unitSettings(10, 0), CalculationInput{
		WaterOld: 120,
		WaterNew: 147,
	})
	require.NoError(t, err)
	assert.Equal(t, "Air (meteran 120 → 147, pakai 27 unit)", items[1].Name)
	assert.Equal(t, 270, items[1].Amount)
}

func TestComputeInvoice_WaterMeterRollbackClampedToZero(t *testing.T) {
	// meteran mundur (50 → 30): biaya 0, tapi label tetap tampilkan angka mentah
	items, _, err := ComputeInvoice(testRoom(0), unitSettings(10, 0), CalculationInput{
		WaterOld: 50,
		WaterNew: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "Air (meteran 50 → 30, pakai -20 unit)", items[1].Name)
	assert.Equal(t, 0, items[1].Amount)
}

func TestComputeInvoice_WaterPerPerson(t *testing.T) {
	items, _, err := ComputeInvoice(testRoom(0), personSettings(100, 0), CalculationInput{
		NumberOfPeople: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Air (flat 3 orang x 100)", items[1].Name)
	assert.Equal(t, 300, items[1].Amount)
}

func TestComputeInvoice_WaterPerPersonDefaultsApplied(t *testing.T) {
	// harga per orang belum diset → fallback 100; jumlah orang 0 → minimal 1
	items, _, err := ComputeInvoice(testRoom(0), personSettings(0, 0), CalculationInput{
		NumberOfPeople: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Air (flat 1 orang x 100)", items[1].Name)
	assert.Equal(t, 100, items[1].Amount)
}

func TestComputeInvoice_Electric(t *testing.T) {
	items, _, err := ComputeInvoice(testRoom(0), unitSettings(0, 8), CalculationInput{
		ElectricOld: 1000,
		ElectricNew: 1050,
	})
	require.NoError(t, err)
	assert.Equal(t, "Listrik (meteran 1000 → 1050, pakai 50 unit)", items[2].Name)
	assert.Equal(t, 400, items[2].Amount)
}

func TestComputeInvoice_ElectricRollbackClampedToZero(t *testing.T) {
	items, _, err := ComputeInvoice(testRoom(0), unitSettings(0, 8), CalculationInput{
		ElectricOld: 1050,
		ElectricNew: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Listrik (meteran 1050 → 1000, pakai -50 unit)", items[2].Name)
	assert.Equal(t, 0, items[2].Amount)
}

func TestComputeInvoice_WaterCrates(t *testing.T) {
	t.Run("zero crates skips the item", func(t *testing.T) {
		items, _, err := ComputeInvoice(testRoom(0), unitSettings(0, 0), CalculationInput{
			WaterCrateCount: 0,
		})
		require.NoError(t, err)
		for _, it := range items {
			assert.NotContains(t, it.Name, "Air minum")
		}
	})

	t.Run("two crates cost 100", func(t *testing.T) {
		items, _, err := ComputeInvoice(testRoom(0), unitSettings(0, 0), CalculationInput{
			WaterCrateCount: 2,
		})
		require.NoError(t, err)
		last := items[len(items)-1]
		assert.Equal(t, "Air minum (2 krat)", last.Name)
		assert.Equal(t, 100, last.Amount)
	})
}

func TestComputeInvoice_ExtraItemsKeepOrder(t *testing.T) {
	extras := []model.LineItem{
		{Name: "Denda keterlambatan", Amount: 25},
		{Name: "Laundry", Amount: 40},
	}
	items, _, err := ComputeInvoice(testRoom(0), unitSettings(0, 0), CalculationInput{
		ExtraItems: extras,
	})
	require.NoError(t, err)
	n := len(items)
	assert.Equal(t, extras[0], items[n-2])
	assert.Equal(t, extras[1], items[n-1])
}

func TestComputeInvoice_FullBill(t *testing.T) {
	// sewa 3500 + air 27x10=270 + listrik 50x8=400 + 2 krat=100
	items, total, err := ComputeInvoice(testRoom(3500), unitSettings(10, 8), CalculationInput{
		WaterOld:        120,
		WaterNew:        147,
		ElectricOld:     1000,
		ElectricNew:     1050,
		WaterCrateCount: 2,
	})
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, 4270, total)
	assert.Equal(t, model.SumItems(items), total)
}

func TestComputeInvoice_TotalAlwaysEqualsSumOfItems(t *testing.T) {
	cases := []CalculationInput{
		{},
		{WaterOld: 10, WaterNew: 5, ElectricOld: 100, ElectricNew: 90},
		{WaterNew: 1000, ElectricNew: 1000, WaterCrateCount: 7},
		{ExtraItems: []model.LineItem{{Name: "Diskon", Amount: -500}}},
	}
	for _, in := range cases {
		items, total, err := ComputeInvoice(testRoom(3500), unitSettings(10, 8), in)
		require.NoError(t, err)
		assert.Equal(t, model.SumItems(items), total)
	}
}
