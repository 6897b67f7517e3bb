package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/users/user/model"
)

// Struktur sesuai dengan isi data_users.json
type UserSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var users []UserSeed
	if err := json.Unmarshal(file, &users); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, u := range users {
		var existing model.UserModel
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User %s sudah ada, lewati...", u.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Gagal hash password utk %s: %v", u.Email, err)
		}

		newUser := model.UserModel{
			Email:    u.Email,
			Password: string(hashed),
			Role:     u.Role,
			IsActive: true,
		}
		newUser.SetDefaultValues()

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal seed user %s: %v", u.Email, err)
			continue
		}
		log.Printf("✅ User %s (%s) berhasil di-seed", newUser.Email, newUser.Role)
	}
}
