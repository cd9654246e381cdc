package seeds

import (
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	rooms "kostku_backend/internals/seeds/rooms"
)

// RunAllSeeds: path kosong = file default di repo.
func RunAllSeeds(db *gorm.DB, roomsPath string) error {
	if roomsPath == "" {
		roomsPath = rooms.DefaultPath
	}

	//* Rooms
	inserted, skipped, err := rooms.SeedRoomsFromJSON(db, roomsPath)
	if err != nil {
		return err
	}
	configs.Logger.Infof("🏠 rooms: %d baru, %d dilewati", inserted, skipped)
	return nil
}
