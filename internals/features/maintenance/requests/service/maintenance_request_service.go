package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/features/maintenance/requests/dto"
	"kostku_backend/internals/features/maintenance/requests/model"
)

// listRow: hasil join maintenance_requests + rooms.
type listRow struct {
	MaintenanceRequestID         uuid.UUID
	MaintenanceRequestIssue      string
	MaintenanceRequestRoomID     uuid.UUID
	MaintenanceRequestTenantName *string
	MaintenanceRequestStatus     model.MaintenanceStatus
	MaintenanceRequestCreatedAt  time.Time
	MaintenanceRequestUpdatedAt  time.Time
	RoomNumber                   *string
}

func (r listRow) toResponse() dto.MaintenanceRequestResponse {
	return dto.MaintenanceRequestResponse{
		MaintenanceRequestID:         r.MaintenanceRequestID,
		MaintenanceRequestIssue:      r.MaintenanceRequestIssue,
		MaintenanceRequestRoomID:     r.MaintenanceRequestRoomID,
		MaintenanceRequestRoomNumber: r.RoomNumber,
		MaintenanceRequestTenantName: r.MaintenanceRequestTenantName,
		MaintenanceRequestStatus:     r.MaintenanceRequestStatus,
		MaintenanceRequestCreatedAt:  r.MaintenanceRequestCreatedAt,
		MaintenanceRequestUpdatedAt:  r.MaintenanceRequestUpdatedAt,
	}
}

type ListFilter struct {
	Status *model.MaintenanceStatus
	RoomID *uuid.UUID
	Offset int
	Limit  int // <= 0 = semua
}

func baseQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("maintenance_requests AS m").
		Select(`m.maintenance_request_id, m.maintenance_request_issue, m.maintenance_request_room_id,
			m.maintenance_request_tenant_name, m.maintenance_request_status,
			m.maintenance_request_created_at, m.maintenance_request_updated_at, r.room_number`).
		Joins("LEFT JOIN rooms r ON r.room_id = m.maintenance_request_room_id")
}

// List: terbaru dulu.
func List(ctx context.Context, db *gorm.DB, f ListFilter) ([]dto.MaintenanceRequestResponse, int64, error) {
	q := db.WithContext(ctx).Model(&model.MaintenanceRequestModel{})
	if f.Status != nil {
		q = q.Where("maintenance_request_status = ?", *f.Status)
	}
	if f.RoomID != nil {
		q = q.Where("maintenance_request_room_id = ?", *f.RoomID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	lq := baseQuery(ctx, db)
	if f.Status != nil {
		lq = lq.Where("m.maintenance_request_status = ?", *f.Status)
	}
	if f.RoomID != nil {
		lq = lq.Where("m.maintenance_request_room_id = ?", *f.RoomID)
	}
	lq = lq.Order("m.maintenance_request_created_at DESC")
	if f.Limit > 0 {
		lq = lq.Offset(f.Offset).Limit(f.Limit)
	}

	var rows []listRow
	if err := lq.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]dto.MaintenanceRequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toResponse())
	}
	return out, total, nil
}

func Find(ctx context.Context, db *gorm.DB, id uuid.UUID) (*dto.MaintenanceRequestResponse, error) {
	var rows []listRow
	if err := baseQuery(ctx, db).
		Where("m.maintenance_request_id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	out := rows[0].toResponse()
	return &out, nil
}

// Create: issue di-trim; kosong ditolak oleh pemanggil (validator).
func Create(ctx context.Context, db *gorm.DB, m *model.MaintenanceRequestModel) error {
	m.MaintenanceRequestIssue = strings.TrimSpace(m.MaintenanceRequestIssue)
	m.MaintenanceRequestStatus = model.MaintenanceOpen
	return db.WithContext(ctx).Create(m).Error
}

// UpdateStatus: bebas any → any.
func UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status model.MaintenanceStatus) (int64, error) {
	res := db.WithContext(ctx).Model(&model.MaintenanceRequestModel{}).
		Where("maintenance_request_id = ?", id).
		Update("maintenance_request_status", status)
	return res.RowsAffected, res.Error
}
