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
	"kostku_backend/internals/features/maintenance/requests/dto"
	"kostku_backend/internals/features/maintenance/requests/model"
	"kostku_backend/internals/features/maintenance/requests/route"
	roomModel "kostku_backend/internals/features/property/rooms/model"
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
	route.MaintenanceRequestAdminRoutes(app.Group("/api/a"), db)
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

func TestMaintenanceFlow(t *testing.T) {
	app, db := setup(t)
	room := roomModel.RoomModel{RoomNumber: "301", RoomFloor: 3}
	require.NoError(t, db.Create(&room).Error)

	code, created := do[dto.MaintenanceRequestResponse](t, app, http.MethodPost, "/api/a/maintenance-requests", fiber.Map{
		"maintenance_request_issue":   "  Window cracked  ",
		"maintenance_request_room_id": room.RoomID.String(),
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Window cracked", created.Data.MaintenanceRequestIssue)
	assert.Equal(t, model.MaintenanceOpen, created.Data.MaintenanceRequestStatus)
	require.NotNil(t, created.Data.MaintenanceRequestRoomNumber)
	assert.Equal(t, "301", *created.Data.MaintenanceRequestRoomNumber)

	path := "/api/a/maintenance-requests/" + created.Data.MaintenanceRequestID.String() + "/status"
	code, updated := do[dto.MaintenanceRequestResponse](t, app, http.MethodPatch, path, fiber.Map{"status": "resolved"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, model.MaintenanceResolved, updated.Data.MaintenanceRequestStatus)

	code, list := do[[]dto.MaintenanceRequestResponse](t, app, http.MethodGet, "/api/a/maintenance-requests?status=resolved", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list.Data, 1)

	code, list = do[[]dto.MaintenanceRequestResponse](t, app, http.MethodGet, "/api/a/maintenance-requests?status=open", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, list.Data)
}

func TestCreateMaintenance_Rejects(t *testing.T) {
	app, db := setup(t)
	room := roomModel.RoomModel{RoomNumber: "101"}
	require.NoError(t, db.Create(&room).Error)

	code, env := do[any](t, app, http.MethodPost, "/api/a/maintenance-requests", fiber.Map{
		"maintenance_request_issue":   "   ",
		"maintenance_request_room_id": room.RoomID.String(),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "maintenance_request_issue")

	code, _ = do[any](t, app, http.MethodPost, "/api/a/maintenance-requests", fiber.Map{
		"maintenance_request_issue":   "Fan",
		"maintenance_request_room_id": uuid.NewString(),
	})
	assert.Equal(t, http.StatusBadRequest, code)

	var n int64
	require.NoError(t, db.Model(&model.MaintenanceRequestModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateMaintenanceStatus_Errors(t *testing.T) {
	app, _ := setup(t)

	code, _ := do[any](t, app, http.MethodPatch, "/api/a/maintenance-requests/"+uuid.NewString()+"/status", fiber.Map{"status": "done"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = do[any](t, app, http.MethodPatch, "/api/a/maintenance-requests/"+uuid.NewString()+"/status", fiber.Map{"status": "open"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do[any](t, app, http.MethodPatch, "/api/a/maintenance-requests/not-a-uuid/status", fiber.Map{"status": "open"})
	assert.Equal(t, http.StatusBadRequest, code)
}
