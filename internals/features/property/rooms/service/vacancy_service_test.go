package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostku_backend/internals/databases/dbtest"
	"kostku_backend/internals/features/property/rooms/model"
	tenantModel "kostku_backend/internals/features/property/tenants/model"
)

func roomNumbers(rows []model.RoomModel) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.RoomNumber)
	}
	return out
}

func TestListVacantRooms(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	rooms := []model.RoomModel{
		{RoomNumber: "201", RoomFloor: 2},
		{RoomNumber: "102", RoomFloor: 1},
		{RoomNumber: "101", RoomFloor: 1},
	}
	require.NoError(t, db.Create(&rooms).Error)

	// tanpa tenant → semua kosong, urut lantai lalu nomor
	got, err := ListVacantRooms(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102", "201"}, roomNumbers(got))

	// dua tenant berbagi kamar 102, satu tenant tanpa kamar
	shared := rooms[1].RoomID
	tenants := []tenantModel.TenantModel{
		{TenantName: "Asha", TenantRoomID: &shared},
		{TenantName: "Ravi", TenantRoomID: &shared},
		{TenantName: "Meera"},
	}
	require.NoError(t, db.Create(&tenants).Error)

	got, err = ListVacantRooms(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "201"}, roomNumbers(got))

	occupied, err := OccupiedRoomIDs(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{shared}, occupied)

	// hapus kedua tenant → kamar 102 kosong lagi
	require.NoError(t, db.Where("tenant_room_id = ?", shared).Delete(&tenantModel.TenantModel{}).Error)
	got, err = ListVacantRooms(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102", "201"}, roomNumbers(got))
}

func TestRoomExists(t *testing.T) {
	db := dbtest.Open(t)
	r := model.RoomModel{RoomNumber: "1"}
	require.NoError(t, db.Create(&r).Error)

	ok, err := RoomExists(context.Background(), db, r.RoomID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = RoomExists(context.Background(), db, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
