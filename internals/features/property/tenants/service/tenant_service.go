package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"kostku_backend/internals/features/property/tenants/model"
)

// ListTenants: semua tenant + relasi kamar, diurutkan per nomor kamar (Vacant terakhir).
func ListTenants(ctx context.Context, db *gorm.DB) ([]model.TenantModel, error) {
	var rows []model.TenantModel
	if err := db.WithContext(ctx).
		Preload("Room").
		Order("tenant_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	SortByRoomNumber(rows)
	return rows, nil
}

// SortByRoomNumber: numerik kalau kedua nomor angka, selain itu string;
// tenant tanpa kamar di paling bawah. Stable.
func SortByRoomNumber(rows []model.TenantModel) {
	sort.SliceStable(rows, func(i, j int) bool {
		return lessRoom(rows[i].RoomNumber(), rows[j].RoomNumber())
	})
}

func lessRoom(a, b string) bool {
	switch {
	case a == "" && b == "":
		return false
	case a == "":
		return false
	case b == "":
		return true
	}
	an, aErr := strconv.ParseFloat(strings.TrimSpace(a), 64)
	bn, bErr := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if aErr == nil && bErr == nil {
		return an < bn
	}
	return a < b
}
