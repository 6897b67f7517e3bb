package rooms

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/rooms/model"
)

// Struktur sesuai dengan isi data_rooms.json
type RoomSeed struct {
	RoomNumber     string   `json:"room_number"`
	RoomFloor      int      `json:"room_floor"`
	RoomType       string   `json:"room_type"`
	RoomBasePrice  int      `json:"room_base_price"`
	RoomFacilities []string `json:"room_facilities"`
}

func SeedRoomsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var roomsData []RoomSeed
	if err := json.Unmarshal(file, &roomsData); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, r := range roomsData {
		var existing model.RoomModel
		if err := db.Where("room_number = ?", r.RoomNumber).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kamar %s sudah ada, lewati...", r.RoomNumber)
			continue
		}

		newRoom := model.RoomModel{
			RoomNumber:     r.RoomNumber,
			RoomFloor:      r.RoomFloor,
			RoomType:       model.RoomType(r.RoomType),
			RoomBasePrice:  r.RoomBasePrice,
			RoomStatus:     model.RoomStatusVacant,
			RoomFacilities: r.RoomFacilities,
		}

		if err := db.Create(&newRoom).Error; err != nil {
			log.Printf("❌ Gagal seed kamar %s: %v", r.RoomNumber, err)
			continue
		}
		log.Printf("✅ Kamar %s berhasil di-seed", newRoom.RoomNumber)
	}
}
