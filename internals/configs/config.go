package configs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	DefaultRentAmount  int64 = 10000
	DefaultProofBucket       = "payment-proofs"
	DefaultTimezone          = "Asia/Kolkata"
)

var (
	RentAmount     int64
	ProofBucket    string
	StorageDriver  string
	ProofImageWebP bool
	AppTimezone    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			Logger.Warn("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			Logger.Info("✅ .env file berhasil dimuat!")
		}
	} else {
		Logger.Info("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	RentAmount = GetEnvInt64("RENT_AMOUNT", DefaultRentAmount)
	ProofBucket = GetEnv("PROOF_BUCKET", DefaultProofBucket)
	StorageDriver = strings.ToLower(GetEnv("STORAGE_DRIVER", "oss"))
	ProofImageWebP = GetEnvBool("PROOF_IMAGE_WEBP", false)
	AppTimezone = GetEnv("APP_TIMEZONE", DefaultTimezone)

	if RentAmount <= 0 {
		Logger.Warnf("❌ RENT_AMOUNT tidak valid (%d), pakai default %d", RentAmount, DefaultRentAmount)
		RentAmount = DefaultRentAmount
	}
	Logger.WithFields(logrus.Fields{
		"rent_amount":    RentAmount,
		"proof_bucket":   ProofBucket,
		"storage_driver": StorageDriver,
		"timezone":       AppTimezone,
	}).Info("✅ Konfigurasi aplikasi dimuat")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

// TrustedProxies: TRUSTED_PROXIES (IP / CIDR dipisah koma).
// Kosong = X-Forwarded-For tidak dipercaya, c.IP() pakai alamat socket.
func TrustedProxies() []string {
	out := []string{}
	for _, p := range strings.Split(GetEnv("TRUSTED_PROXIES"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Location dari APP_TIMEZONE, fallback UTC.
func Location() *time.Location {
	tz := AppTimezone
	if tz == "" {
		tz = GetEnv("APP_TIMEZONE", DefaultTimezone)
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	return time.UTC
}

// =======================
// DATABASE CONNECTOR
// =======================

// BuildDSN: DATABASE_URL menang kalau diset, selain itu dirakit dari DB_*.
func BuildDSN() string {
	if url := strings.TrimSpace(os.Getenv("DATABASE_URL")); url != "" {
		return url
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s&application_name=kostku",
		GetEnv("DB_USER"), GetEnv("DB_PASSWORD"), GetEnv("DB_HOST"),
		GetEnv("DB_PORT", "5432"), GetEnv("DB_NAME"), GetEnv("DB_SSLMODE", "require"))
}

// OpenCLIDB dipakai kostctl: tanpa pool tuning, logger level Warn.
func OpenCLIDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  BuildDSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: NewGormLogger().LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("koneksi database: %w", err)
	}
	return db, nil
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if strings.EqualFold(GetEnv("LOG_LEVEL"), "debug") {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		Logger.Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		Logger.Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		Logger.Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := Logger.WithFields(logrus.Fields{
		"file":    utils.FileWithLineNum(),
		"elapsed": elapsed.String(),
		"rows":    rows,
	})

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		entry.WithError(err).Errorf("[SQL] %s", sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		entry.Warnf("[SLOW SQL] %s", sql)
	case l.LogLevel >= gormLogger.Info:
		entry.Debugf("[QUERY] %s", sql)
	}
}
