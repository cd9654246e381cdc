// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentLate    PaymentStatus = "late"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentLate:
		return true
	}
	return false
}

// PaymentModel: satu baris per (tenant, bulan).
// payment_tenant_id sengaja tanpa FK supaya histori tetap ada walau tenant dihapus.
type PaymentModel struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"type:uuid;primaryKey;column:payment_id"`

	PaymentTenantID uuid.UUID      `json:"payment_tenant_id" gorm:"type:uuid;not null;column:payment_tenant_id;uniqueIndex:uq_payments_tenant_month,priority:1"`
	PaymentMonth    datatypes.Date `json:"payment_month" gorm:"type:date;not null;column:payment_month;uniqueIndex:uq_payments_tenant_month,priority:2;index:idx_payments_month"`

	PaymentAmount int64         `json:"payment_amount" gorm:"not null;check:payment_amount >= 0;column:payment_amount"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);not null;default:pending;column:payment_status"`
	PaymentPaidAt *time.Time    `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at"`

	PaymentCreatedAt time.Time `json:"payment_created_at" gorm:"column:payment_created_at;autoCreateTime"`
	PaymentUpdatedAt time.Time `json:"payment_updated_at" gorm:"column:payment_updated_at;autoUpdateTime"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentPending
	}
	return nil
}
