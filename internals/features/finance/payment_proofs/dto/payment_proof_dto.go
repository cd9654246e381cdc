package dto

import (
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/finance/payment_proofs/model"
	"kostku_backend/internals/helpers/dbtime"
)

type PaymentProofResponse struct {
	PaymentProofID         uuid.UUID  `json:"payment_proof_id"`
	PaymentProofTenantID   *uuid.UUID `json:"payment_proof_tenant_id,omitempty"`
	PaymentProofTenantName string     `json:"payment_proof_tenant_name"`
	PaymentProofRoomID     uuid.UUID  `json:"payment_proof_room_id"`
	PaymentProofMonth      string     `json:"payment_proof_month"` // YYYY-MM-01
	PaymentProofFileURL    string     `json:"payment_proof_file_url"`
	PaymentProofCreatedAt  time.Time  `json:"payment_proof_created_at"`
}

func FromModel(m model.PaymentProofModel) PaymentProofResponse {
	return PaymentProofResponse{
		PaymentProofID:         m.PaymentProofID,
		PaymentProofTenantID:   m.PaymentProofTenantID,
		PaymentProofTenantName: m.PaymentProofTenantName,
		PaymentProofRoomID:     m.PaymentProofRoomID,
		PaymentProofMonth:      dbtime.FormatMonth(time.Time(m.PaymentProofMonth)),
		PaymentProofFileURL:    m.PaymentProofFileURL,
		PaymentProofCreatedAt:  m.PaymentProofCreatedAt,
	}
}

func FromModels(rows []model.PaymentProofModel) []PaymentProofResponse {
	out := make([]PaymentProofResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
