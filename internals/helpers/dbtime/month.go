// file: internals/helpers/dbtime/month.go
package dbtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"kostku_backend/internals/configs"
)

const (
	MonthLayout    = "2006-01"
	MonthDayLayout = "2006-01-02"
)

// ParseMonth menerima "YYYY-MM" atau "YYYY-MM-DD" lalu normalisasi
// ke tanggal 1 (UTC). Hari di input diabaikan.
func ParseMonth(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("month kosong")
	}
	layout := MonthDayLayout
	if len(s) == len(MonthLayout) {
		layout = MonthLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("month tidak valid (YYYY-MM atau YYYY-MM-DD): %q", s)
	}
	return FirstOfMonth(t), nil
}

func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ToDate: untuk kolom bertipe date (payment_month, payment_proof_month).
func ToDate(t time.Time) datatypes.Date {
	return datatypes.Date(FirstOfMonth(t))
}

// FormatMonth → "YYYY-MM-01" (format kolom & opsi dropdown).
func FormatMonth(t time.Time) string {
	return FirstOfMonth(t).Format(MonthDayLayout)
}

// MonthKey → "YYYY-MM" (dipakai di path object storage).
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// MonthOptions: 12 opsi "YYYY-MM-01" untuk satu tahun.
func MonthOptions(year int) []string {
	out := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Format(MonthDayLayout))
	}
	return out
}

// Now di APP_TIMEZONE.
func Now() time.Time {
	return time.Now().In(configs.Location())
}

// CurrentMonth: bulan berjalan di APP_TIMEZONE, sudah dinormalisasi.
func CurrentMonth() time.Time {
	return FirstOfMonth(Now())
}

// MonthFromQuery: ?month= → bulan; kosong = bulan berjalan.
func MonthFromQuery(c *fiber.Ctx, key string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return CurrentMonth(), nil
	}
	m, err := ParseMonth(raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return m, nil
}
