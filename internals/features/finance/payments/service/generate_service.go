package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kostku_backend/internals/features/finance/payments/model"
	tenantModel "kostku_backend/internals/features/property/tenants/model"
	"kostku_backend/internals/helpers/dbtime"
)

// GeneratePayments membuat satu baris pending per tenant untuk bulan tsb.
// Insert-if-absent di level DB (ON CONFLICT tenant+month DO NOTHING), jadi
// aman dipanggil berulang / bersamaan: hanya baris yang belum ada yang masuk.
// Return: jumlah baris yang benar-benar di-insert.
func GeneratePayments(ctx context.Context, db *gorm.DB, month time.Time, amount int64) (int64, error) {
	var inserted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenantIDs []uuid.UUID
		if err := tx.Model(&tenantModel.TenantModel{}).
			Order("tenant_created_at ASC").
			Pluck("tenant_id", &tenantIDs).Error; err != nil {
			return err
		}
		if len(tenantIDs) == 0 {
			return nil
		}

		m := dbtime.ToDate(month)
		rows := make([]model.PaymentModel, 0, len(tenantIDs))
		for _, id := range tenantIDs {
			rows = append(rows, model.PaymentModel{
				PaymentID:       uuid.New(),
				PaymentTenantID: id,
				PaymentMonth:    m,
				PaymentAmount:   amount,
				PaymentStatus:   model.PaymentPending,
			})
		}

		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_tenant_id"}, {Name: "payment_month"}},
			DoNothing: true,
		}).Create(&rows)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	return inserted, err
}

// CountForMonth: dipakai untuk hint can_generate.
func CountForMonth(ctx context.Context, db *gorm.DB, month time.Time) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.PaymentModel{}).
		Where("payment_month = ?", dbtime.ToDate(month)).
		Count(&n).Error
	return n, err
}
