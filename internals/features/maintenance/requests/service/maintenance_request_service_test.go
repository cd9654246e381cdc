package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostku_backend/internals/databases/dbtest"
	"kostku_backend/internals/features/maintenance/requests/model"
	"kostku_backend/internals/features/maintenance/requests/service"
	roomModel "kostku_backend/internals/features/property/rooms/model"
)

func TestList_NewestFirstWithRoomNumber(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	room := roomModel.RoomModel{RoomNumber: "204", RoomFloor: 2}
	require.NoError(t, db.Create(&room).Error)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, issue := range []string{"Leaking tap", "Broken fan", "No hot water"} {
		m := model.MaintenanceRequestModel{
			MaintenanceRequestIssue:     issue,
			MaintenanceRequestRoomID:    room.RoomID,
			MaintenanceRequestCreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&m).Error)
	}

	rows, total, err := service.List(ctx, db, service.ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	assert.Equal(t, "No hot water", rows[0].MaintenanceRequestIssue)
	assert.Equal(t, "Leaking tap", rows[2].MaintenanceRequestIssue)
	require.NotNil(t, rows[0].MaintenanceRequestRoomNumber)
	assert.Equal(t, "204", *rows[0].MaintenanceRequestRoomNumber)
	assert.Equal(t, model.MaintenanceOpen, rows[0].MaintenanceRequestStatus)

	rows, total, err = service.List(ctx, db, service.ListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Broken fan", rows[0].MaintenanceRequestIssue)
}

func TestCreate_TrimsAndForcesOpen(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	m := model.MaintenanceRequestModel{
		MaintenanceRequestIssue:  "  Door lock stuck \n",
		MaintenanceRequestRoomID: uuid.New(),
		MaintenanceRequestStatus: model.MaintenanceResolved,
	}
	require.NoError(t, service.Create(ctx, db, &m))

	var got model.MaintenanceRequestModel
	require.NoError(t, db.First(&got, "maintenance_request_id = ?", m.MaintenanceRequestID).Error)
	assert.Equal(t, "Door lock stuck", got.MaintenanceRequestIssue)
	assert.Equal(t, model.MaintenanceOpen, got.MaintenanceRequestStatus)
}

func TestUpdateStatus_AnyTransition(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	m := model.MaintenanceRequestModel{MaintenanceRequestIssue: "Fan", MaintenanceRequestRoomID: uuid.New()}
	require.NoError(t, service.Create(ctx, db, &m))

	for _, st := range []model.MaintenanceStatus{model.MaintenanceResolved, model.MaintenanceOpen, model.MaintenanceInProgress} {
		n, err := service.UpdateStatus(ctx, db, m.MaintenanceRequestID, st)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		got, err := service.Find(ctx, db, m.MaintenanceRequestID)
		require.NoError(t, err)
		assert.Equal(t, st, got.MaintenanceRequestStatus)
		assert.Nil(t, got.MaintenanceRequestRoomNumber)
	}

	n, err := service.UpdateStatus(ctx, db, uuid.New(), model.MaintenanceResolved)
	require.NoError(t, err)
	assert.Zero(t, n)
}
