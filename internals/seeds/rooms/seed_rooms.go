package rooms

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	"kostku_backend/internals/features/property/rooms/model"
)

const DefaultPath = "internals/seeds/rooms/data_rooms.json"

type RoomSeed struct {
	RoomNumber          string  `json:"room_number"`
	RoomFloor           int     `json:"room_floor"`
	RoomExtraFacilities *string `json:"room_extra_facilities"`
}

// SeedRoomsFromJSON: kamar dengan nomor yang sudah ada dilewati.
func SeedRoomsFromJSON(db *gorm.DB, filePath string) (inserted, skipped int, err error) {
	configs.Logger.Info("📥 Membaca file: ", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, 0, fmt.Errorf("gagal membaca file JSON: %w", err)
	}

	var seeds []RoomSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		return 0, 0, fmt.Errorf("gagal decode JSON: %w", err)
	}

	for _, seed := range seeds {
		number := strings.TrimSpace(seed.RoomNumber)
		if number == "" {
			skipped++
			continue
		}

		var count int64
		if err := db.Model(&model.RoomModel{}).Where("room_number = ?", number).Count(&count).Error; err != nil {
			return inserted, skipped, err
		}
		if count > 0 {
			configs.Logger.Infof("ℹ️ Kamar '%s' sudah ada, lewati...", number)
			skipped++
			continue
		}

		room := model.RoomModel{
			RoomNumber:          number,
			RoomFloor:           seed.RoomFloor,
			RoomExtraFacilities: seed.RoomExtraFacilities,
		}
		if err := db.Create(&room).Error; err != nil {
			return inserted, skipped, fmt.Errorf("gagal insert kamar %q: %w", number, err)
		}
		configs.Logger.Infof("✅ Berhasil insert kamar '%s'", number)
		inserted++
	}
	return inserted, skipped, nil
}
