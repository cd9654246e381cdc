// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/finance/payments/model"
	"kostku_backend/internals/features/finance/payments/service"
	"kostku_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type GeneratePaymentsRequest struct {
	Month string `json:"month" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid late"`
}

func (r *UpdatePaymentStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

/* ===================== RESPONSES ===================== */

type PaymentResponse struct {
	PaymentID        uuid.UUID           `json:"payment_id"`
	PaymentTenantID  uuid.UUID           `json:"payment_tenant_id"`
	PaymentMonth     string              `json:"payment_month"` // YYYY-MM-01
	PaymentAmount    int64               `json:"payment_amount"`
	PaymentStatus    model.PaymentStatus `json:"payment_status"`
	PaymentPaidAt    *time.Time          `json:"payment_paid_at,omitempty"`
	TenantName       *string             `json:"tenant_name"` // nil = tenant sudah dihapus
	TenantRoomID     *uuid.UUID          `json:"tenant_room_id,omitempty"`
	RoomNumber       *string             `json:"room_number,omitempty"`
	ProofFileURL     *string             `json:"proof_file_url"`
	PaymentCreatedAt time.Time           `json:"payment_created_at"`
}

type PaymentListResponse struct {
	Month       string            `json:"month"`
	CanGenerate bool              `json:"can_generate"` // true kalau bulan ini belum ada baris sama sekali
	Payments    []PaymentResponse `json:"payments"`
}

type GeneratePaymentsResponse struct {
	Month    string            `json:"month"`
	Amount   int64             `json:"amount"`
	Inserted int64             `json:"inserted"`
	Payments []PaymentResponse `json:"payments"`
}

func FromLedgerRow(r service.LedgerRow) PaymentResponse {
	out := PaymentResponse{
		PaymentID:        r.PaymentID,
		PaymentTenantID:  r.PaymentTenantID,
		PaymentMonth:     dbtime.FormatMonth(time.Time(r.PaymentMonth)),
		PaymentAmount:    r.PaymentAmount,
		PaymentStatus:    r.PaymentStatus,
		PaymentPaidAt:    r.PaymentPaidAt,
		TenantName:       r.TenantName,
		TenantRoomID:     r.TenantRoomID,
		RoomNumber:       r.RoomNumber,
		PaymentCreatedAt: r.PaymentCreatedAt,
	}
	if r.Proof != nil {
		u := r.Proof.PaymentProofFileURL
		out.ProofFileURL = &u
	}
	return out
}

func FromLedgerRows(rows []service.LedgerRow) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromLedgerRow(r))
	}
	return out
}
