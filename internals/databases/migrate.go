package database

import (
	"gorm.io/gorm"

	proofModel "kostku_backend/internals/features/finance/payment_proofs/model"
	paymentModel "kostku_backend/internals/features/finance/payments/model"
	maintenanceModel "kostku_backend/internals/features/maintenance/requests/model"
	roomModel "kostku_backend/internals/features/property/rooms/model"
	tenantModel "kostku_backend/internals/features/property/tenants/model"
)

// Models: urutan penting (rooms dulu karena FK tenants.tenant_room_id).
func Models() []any {
	return []any{
		&roomModel.RoomModel{},
		&tenantModel.TenantModel{},
		&paymentModel.PaymentModel{},
		&proofModel.PaymentProofModel{},
		&maintenanceModel.MaintenanceRequestModel{},
	}
}

// AutoMigrate membuat/menyesuaikan tabel + index, termasuk
// uq_payments_tenant_month yang jadi conflict target generate payments.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
