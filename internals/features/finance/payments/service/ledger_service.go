package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	proofModel "kostku_backend/internals/features/finance/payment_proofs/model"
	"kostku_backend/internals/features/finance/payments/model"
	"kostku_backend/internals/helpers/dbtime"
)

// LedgerRow: payment + tenant (LEFT JOIN, tenant bisa sudah dihapus) + kamar + bukti.
type LedgerRow struct {
	PaymentID        uuid.UUID
	PaymentTenantID  uuid.UUID
	PaymentMonth     datatypes.Date
	PaymentAmount    int64
	PaymentStatus    model.PaymentStatus
	PaymentPaidAt    *time.Time
	PaymentCreatedAt time.Time

	TenantName   *string
	TenantRoomID *uuid.UUID
	RoomNumber   *string

	Proof *proofModel.PaymentProofModel `gorm:"-"`
}

// ListLedger: semua payment di bulan tsb, sudah dipasangkan dengan bukti bayar.
func ListLedger(ctx context.Context, db *gorm.DB, month time.Time) ([]LedgerRow, error) {
	m := dbtime.ToDate(month)

	var rows []LedgerRow
	if err := db.WithContext(ctx).
		Table("payments AS p").
		Select(`p.payment_id, p.payment_tenant_id, p.payment_month, p.payment_amount,
			p.payment_status, p.payment_paid_at, p.payment_created_at,
			t.tenant_name, t.tenant_room_id, r.room_number`).
		Joins("LEFT JOIN tenants t ON t.tenant_id = p.payment_tenant_id").
		Joins("LEFT JOIN rooms r ON r.room_id = t.tenant_room_id").
		Where("p.payment_month = ?", m).
		Order("p.payment_created_at ASC").
		Order("t.tenant_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	var proofs []proofModel.PaymentProofModel
	if err := db.WithContext(ctx).
		Where("payment_proof_month = ?", m).
		Order("payment_proof_created_at DESC").
		Find(&proofs).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Proof = MatchProof(rows[i].PaymentTenantID, rows[i].TenantRoomID, time.Time(m), proofs)
	}
	return rows, nil
}

// MatchProof memilih bukti bayar untuk satu payment:
//   - bukti dengan tenant_id → cocok kalau tenant_id sama
//   - bukti lama (tenant_id NULL) → cocok kalau room_id = kamar tenant saat ini
//
// Bulan harus sama. Kalau lebih dari satu cocok, yang terbaru menang.
func MatchProof(tenantID uuid.UUID, tenantRoomID *uuid.UUID, month time.Time, proofs []proofModel.PaymentProofModel) *proofModel.PaymentProofModel {
	month = dbtime.FirstOfMonth(month)

	var best *proofModel.PaymentProofModel
	for i := range proofs {
		p := &proofs[i]
		if !dbtime.FirstOfMonth(time.Time(p.PaymentProofMonth)).Equal(month) {
			continue
		}
		switch {
		case p.PaymentProofTenantID != nil:
			if *p.PaymentProofTenantID != tenantID {
				continue
			}
		case tenantRoomID == nil || p.PaymentProofRoomID != *tenantRoomID:
			continue
		}
		if best == nil || p.PaymentProofCreatedAt.After(best.PaymentProofCreatedAt) {
			best = p
		}
	}
	return best
}

// UpdateStatus: update satu baris tanpa syarat transisi.
// paid_at diisi saat pindah ke paid, dikosongkan untuk status lain.
func UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status model.PaymentStatus, now time.Time) (int64, error) {
	up := map[string]any{"payment_status": status, "payment_paid_at": nil}
	if status == model.PaymentPaid {
		up["payment_paid_at"] = now
	}
	res := db.WithContext(ctx).Model(&model.PaymentModel{}).
		Where("payment_id = ?", id).
		Updates(up)
	return res.RowsAffected, res.Error
}

// FindLedgerRow: satu baris ledger (dipakai setelah update status).
func FindLedgerRow(ctx context.Context, db *gorm.DB, id uuid.UUID) (*LedgerRow, error) {
	var p model.PaymentModel
	if err := db.WithContext(ctx).First(&p, "payment_id = ?", id).Error; err != nil {
		return nil, err
	}
	rows, err := ListLedger(ctx, db, time.Time(p.PaymentMonth))
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].PaymentID == id {
			return &rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
