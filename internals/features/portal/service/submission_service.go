package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	proofModel "kostku_backend/internals/features/finance/payment_proofs/model"
	proofService "kostku_backend/internals/features/finance/payment_proofs/service"
	mrModel "kostku_backend/internals/features/maintenance/requests/model"
	mrService "kostku_backend/internals/features/maintenance/requests/service"
	"kostku_backend/internals/helpers/dbtime"
	helperOSS "kostku_backend/internals/helpers/oss"
)

const UploadTimeout = 45 * time.Second

// SubmitProof: upload dulu, lalu insert baris. Kalau insert gagal,
// object dihapus (best-effort) supaya tidak jadi yatim di bucket.
func SubmitProof(
	ctx context.Context,
	db *gorm.DB,
	blob helperOSS.BlobService,
	who Identity,
	month, now time.Time,
	file *helperOSS.PreparedFile,
) (*proofModel.PaymentProofModel, error) {
	path := ProofObjectPath(who.RoomID, month, now, file.Ext)

	upCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()
	url, key, err := blob.Upload(upCtx, path, file.Data, file.ContentType)
	if err != nil {
		return nil, err
	}

	tenantID := who.TenantID
	m := &proofModel.PaymentProofModel{
		PaymentProofTenantID:   &tenantID,
		PaymentProofTenantName: who.TenantName,
		PaymentProofRoomID:     who.RoomID,
		PaymentProofMonth:      dbtime.ToDate(month),
		PaymentProofFileURL:    url,
		PaymentProofObjectKey:  &key,
	}
	if err := proofService.Create(ctx, db, m); err != nil {
		delCtx, cancelDel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelDel()
		if derr := blob.Delete(delCtx, key); derr != nil {
			configs.Logger.WithError(derr).WithField("object_key", key).Warn("⚠️ gagal hapus object setelah insert gagal")
		}
		return nil, err
	}
	return m, nil
}

// SubmitMaintenance: status open, nama tenant ikut dicatat.
func SubmitMaintenance(ctx context.Context, db *gorm.DB, who Identity, issue string) (*mrModel.MaintenanceRequestModel, error) {
	name := who.TenantName
	m := &mrModel.MaintenanceRequestModel{
		MaintenanceRequestIssue:      issue,
		MaintenanceRequestRoomID:     who.RoomID,
		MaintenanceRequestTenantName: &name,
	}
	if err := mrService.Create(ctx, db, m); err != nil {
		return nil, err
	}
	return m, nil
}
