// file: internals/features/finance/payment_proofs/model/payment_proof_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentProofModel: bukti transfer yang diupload tenant dari portal.
// Bukan FK ke payments; dicocokkan lewat tenant (atau room untuk data lama) + bulan.
type PaymentProofModel struct {
	PaymentProofID uuid.UUID `json:"payment_proof_id" gorm:"type:uuid;primaryKey;column:payment_proof_id"`

	// NULL untuk baris lama (sebelum portal menyimpan tenant_id)
	PaymentProofTenantID   *uuid.UUID     `json:"payment_proof_tenant_id,omitempty" gorm:"type:uuid;column:payment_proof_tenant_id;index:idx_payment_proofs_tenant"`
	PaymentProofTenantName string         `json:"payment_proof_tenant_name" gorm:"type:text;not null;column:payment_proof_tenant_name"`
	PaymentProofRoomID     uuid.UUID      `json:"payment_proof_room_id" gorm:"type:uuid;not null;column:payment_proof_room_id"`
	PaymentProofMonth      datatypes.Date `json:"payment_proof_month" gorm:"type:date;not null;column:payment_proof_month;index:idx_payment_proofs_month"`

	PaymentProofFileURL   string  `json:"payment_proof_file_url" gorm:"type:text;not null;column:payment_proof_file_url"`
	PaymentProofObjectKey *string `json:"payment_proof_object_key,omitempty" gorm:"type:text;column:payment_proof_object_key"`

	PaymentProofCreatedAt time.Time `json:"payment_proof_created_at" gorm:"column:payment_proof_created_at;autoCreateTime"`
}

func (PaymentProofModel) TableName() string { return "payment_proofs" }

func (m *PaymentProofModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentProofID == uuid.Nil {
		m.PaymentProofID = uuid.New()
	}
	return nil
}
