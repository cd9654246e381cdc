package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/payment_proofs/model"
	"kostku_backend/internals/helpers/dbtime"
)

// ListForMonth: bukti bayar satu bulan, terbaru dulu. limit <= 0 = semua.
func ListForMonth(ctx context.Context, db *gorm.DB, month time.Time, offset, limit int) ([]model.PaymentProofModel, int64, error) {
	q := db.WithContext(ctx).Model(&model.PaymentProofModel{}).
		Where("payment_proof_month = ?", dbtime.ToDate(month)).
		Session(&gorm.Session{}) // dipakai ulang untuk count + find

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.PaymentProofModel
	q = q.Order("payment_proof_created_at DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func Create(ctx context.Context, db *gorm.DB, m *model.PaymentProofModel) error {
	return db.WithContext(ctx).Create(m).Error
}
