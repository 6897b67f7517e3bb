package seeds

import (
	"gorm.io/gorm"

	rooms "hostelku_backend/internals/seeds/rooms"
	users "hostelku_backend/internals/seeds/users"
)

// RunAllSeeds dijalankan saat setup awal (env RUN_SEEDS=true).
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	rooms.SeedRoomsFromJSON(db, "internals/seeds/rooms/data_rooms.json")
}
