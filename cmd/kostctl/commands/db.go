package commands

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"kostku_backend/internals/helpers/dbtime"
)

// DBOpener mengembalikan koneksi + fungsi penutupnya.
type DBOpener func() (*gorm.DB, func(), error)

// WithClose: bungkus opener biasa (configs.OpenCLIDB), pool ditutup setelah command.
func WithClose(open func() (*gorm.DB, error)) DBOpener {
	return func() (*gorm.DB, func(), error) {
		db, err := open()
		if err != nil {
			return nil, nil, err
		}
		return db, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	}
}

// monthFlag: kosong = bulan berjalan.
func monthFlag(raw string) (time.Time, error) {
	if raw == "" {
		return dbtime.CurrentMonth(), nil
	}
	m, err := dbtime.ParseMonth(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--month: %w", err)
	}
	return m, nil
}
