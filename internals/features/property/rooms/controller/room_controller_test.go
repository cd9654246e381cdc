package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kostku_backend/internals/databases/dbtest"
	"kostku_backend/internals/features/property/rooms/dto"
	"kostku_backend/internals/features/property/rooms/model"
	"kostku_backend/internals/features/property/rooms/route"
	helper "kostku_backend/internals/helpers"
)

type envelope[T any] struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      T                   `json:"data"`
}

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	route.RoomAdminRoutes(app.Group("/api/a"), db)
	return app, db
}

func do[T any](t *testing.T, app *fiber.App, method, path string, body any) (int, envelope[T]) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope[T]
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestCreateRoom(t *testing.T) {
	app, db := setup(t)

	code, env := do[dto.RoomResponse](t, app, http.MethodPost, "/api/a/rooms", fiber.Map{
		"room_number":           " 204 ",
		"room_floor":            2,
		"room_extra_facilities": "Balcony",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "204", env.Data.RoomNumber)
	assert.Equal(t, 2, env.Data.RoomFloor)
	require.NotNil(t, env.Data.RoomExtraFacilities)
	assert.Equal(t, "Balcony", *env.Data.RoomExtraFacilities)

	var stored model.RoomModel
	require.NoError(t, db.First(&stored, "room_id = ?", env.Data.RoomID).Error)
	assert.Equal(t, "204", stored.RoomNumber)
}

func TestCreateRoom_BlankNumber(t *testing.T) {
	app, db := setup(t)

	code, env := do[any](t, app, http.MethodPost, "/api/a/rooms", fiber.Map{"room_number": "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
	assert.Contains(t, env.Errors, "room_number")

	var n int64
	require.NoError(t, db.Model(&model.RoomModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestPatchRoom_ClearsFacilities(t *testing.T) {
	app, db := setup(t)
	extra := "AC"
	room := model.RoomModel{RoomNumber: "301", RoomFloor: 3, RoomExtraFacilities: &extra}
	require.NoError(t, db.Create(&room).Error)

	path := "/api/a/rooms/" + room.RoomID.String()
	code, env := do[dto.RoomResponse](t, app, http.MethodPatch, path, fiber.Map{
		"room_extra_facilities": "",
		"room_floor":            4,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, env.Data.RoomExtraFacilities)
	assert.Equal(t, 4, env.Data.RoomFloor)
	assert.Equal(t, "301", env.Data.RoomNumber)

	var stored model.RoomModel
	require.NoError(t, db.First(&stored, "room_id = ?", room.RoomID).Error)
	assert.Nil(t, stored.RoomExtraFacilities)

	code, env = do[dto.RoomResponse](t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, room.RoomID, env.Data.RoomID)
	assert.Nil(t, env.Data.RoomExtraFacilities)
}

func TestRoom_UnknownID(t *testing.T) {
	app, _ := setup(t)
	path := "/api/a/rooms/" + uuid.NewString()

	code, env := do[any](t, app, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)

	code, _ = do[any](t, app, http.MethodPatch, path, fiber.Map{"room_floor": 1})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do[any](t, app, http.MethodGet, "/api/a/rooms/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
