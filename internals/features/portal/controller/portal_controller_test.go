package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kostku_backend/internals/databases/dbtest"
	proofModel "kostku_backend/internals/features/finance/payment_proofs/model"
	mrModel "kostku_backend/internals/features/maintenance/requests/model"
	"kostku_backend/internals/features/portal/controller"
	"kostku_backend/internals/features/portal/dto"
	roomModel "kostku_backend/internals/features/property/rooms/model"
	tenantModel "kostku_backend/internals/features/property/tenants/model"
	helper "kostku_backend/internals/helpers"
	helperOSS "kostku_backend/internals/helpers/oss"
)

type envelope[T any] struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      T                   `json:"data"`
}

type fakeBlob struct {
	uploads []string
	deleted []string
}

func (f *fakeBlob) service() *helperOSS.MockBlobService {
	return &helperOSS.MockBlobService{
		UploadFn: func(ctx context.Context, path string, data []byte, contentType string) (string, string, error) {
			f.uploads = append(f.uploads, path)
			return "https://cdn.example.com/payment-proofs/" + path, "payment-proofs/" + path, nil
		},
		DeleteFn: func(ctx context.Context, key string) error {
			f.deleted = append(f.deleted, key)
			return nil
		},
	}
}

func setup(t *testing.T) (*fiber.App, *gorm.DB, *fakeBlob) {
	t.Helper()
	db := dbtest.Open(t)
	blob := &fakeBlob{}

	ctl := controller.NewPortalController(db, blob.service())
	ctl.ToWebP = false
	ctl.Now = func() time.Time { return time.UnixMilli(1717000000123) }

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	g := app.Group("/api/public/portal")
	g.Get("/tenants", ctl.Tenants)
	g.Post("/payment-proofs", ctl.SubmitPaymentProof)
	g.Post("/maintenance-requests", ctl.SubmitMaintenanceRequest)
	return app, db, blob
}

func seedTenant(t *testing.T, db *gorm.DB, name, roomNumber string) tenantModel.TenantModel {
	t.Helper()
	tn := tenantModel.TenantModel{TenantName: name}
	if roomNumber != "" {
		r := roomModel.RoomModel{RoomNumber: roomNumber}
		require.NoError(t, db.Create(&r).Error)
		tn.TenantRoomID = &r.RoomID
	}
	require.NoError(t, db.Omit("Room").Create(&tn).Error)
	return tn
}

func decode[T any](t *testing.T, resp *http.Response) envelope[T] {
	t.Helper()
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var env envelope[T]
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return env
}

func multipartProof(t *testing.T, fields map[string]string, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/public/portal/payment-proofs", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestPortalTenants_OrderedByName(t *testing.T) {
	app, db, _ := setup(t)
	seedTenant(t, db, "Zoya", "3")
	seedTenant(t, db, "Arun", "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/public/portal/tenants", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode[[]dto.PortalTenantResponse](t, resp)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "Arun", env.Data[0].TenantName)
	assert.Nil(t, env.Data[0].RoomNumber)
	require.NotNil(t, env.Data[1].RoomNumber)
	assert.Equal(t, "3", *env.Data[1].RoomNumber)
}

func TestSubmitPaymentProof_StoresRowWithDerivedIdentity(t *testing.T) {
	app, db, blob := setup(t)
	tn := seedTenant(t, db, "Meera", "7")

	req := multipartProof(t, map[string]string{
		"tenant_id": tn.TenantID.String(),
		"month":     "2024-05",
	}, "receipt.pdf", "application/pdf", []byte("%PDF-1.4 test"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	env := decode[dto.SubmittedResponse](t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	assert.Equal(t, "Payment proof submitted successfully.", env.Message)

	require.Len(t, blob.uploads, 1)
	assert.Equal(t, tn.TenantRoomID.String()+"/2024-05_1717000000123.pdf", blob.uploads[0])

	var got proofModel.PaymentProofModel
	require.NoError(t, db.First(&got, "payment_proof_id = ?", env.Data.ID).Error)
	require.NotNil(t, got.PaymentProofTenantID)
	assert.Equal(t, tn.TenantID, *got.PaymentProofTenantID)
	assert.Equal(t, "Meera", got.PaymentProofTenantName)
	assert.Equal(t, *tn.TenantRoomID, got.PaymentProofRoomID)
	assert.True(t, strings.HasSuffix(got.PaymentProofFileURL, "/2024-05_1717000000123.pdf"))
	require.NotNil(t, got.PaymentProofObjectKey)
	assert.Equal(t, "payment-proofs/"+blob.uploads[0], *got.PaymentProofObjectKey)
	assert.Empty(t, blob.deleted)
}

func TestSubmitPaymentProof_Rejects(t *testing.T) {
	app, db, blob := setup(t)
	vacant := seedTenant(t, db, "NoRoom", "")

	cases := []struct {
		name   string
		fields map[string]string
		file   string
		ct     string
		want   int
	}{
		{"unknown tenant", map[string]string{"tenant_id": uuid.NewString(), "month": "2024-05"}, "a.jpg", "image/jpeg", http.StatusBadRequest},
		{"tenant without room", map[string]string{"tenant_id": vacant.TenantID.String(), "month": "2024-05"}, "a.jpg", "image/jpeg", http.StatusBadRequest},
		{"bad month", map[string]string{"tenant_id": vacant.TenantID.String(), "month": "May"}, "a.jpg", "image/jpeg", http.StatusUnprocessableEntity},
		{"missing file", map[string]string{"tenant_id": vacant.TenantID.String(), "month": "2024-05"}, "", "", http.StatusUnprocessableEntity},
		{"not an image", map[string]string{"tenant_id": vacant.TenantID.String(), "month": "2024-05"}, "notes.txt", "text/plain", http.StatusUnsupportedMediaType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(multipartProof(t, tc.fields, tc.file, tc.ct, []byte("data")), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}

	assert.Empty(t, blob.uploads)
	var n int64
	require.NoError(t, db.Model(&proofModel.PaymentProofModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSubmitPaymentProof_DeletesObjectWhenInsertFails(t *testing.T) {
	app, db, blob := setup(t)
	tn := seedTenant(t, db, "Kiran", "9")
	require.NoError(t, db.Migrator().DropTable(&proofModel.PaymentProofModel{}))

	req := multipartProof(t, map[string]string{
		"tenant_id": tn.TenantID.String(),
		"month":     "2024-06-15",
	}, "shot.png", "image/png", []byte("not really a png"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	require.Len(t, blob.uploads, 1)
	require.Len(t, blob.deleted, 1)
	assert.Equal(t, "payment-proofs/"+blob.uploads[0], blob.deleted[0])
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSubmitMaintenance(t *testing.T) {
	app, db, _ := setup(t)
	tn := seedTenant(t, db, "Lata", "5")

	resp := postJSON(t, app, "/api/public/portal/maintenance-requests", fiber.Map{
		"tenant_id": tn.TenantID.String(),
		"issue":     "  Ceiling fan wobbles ",
	})
	env := decode[dto.SubmittedResponse](t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Maintenance request submitted successfully.", env.Message)

	var got mrModel.MaintenanceRequestModel
	require.NoError(t, db.First(&got, "maintenance_request_id = ?", env.Data.ID).Error)
	assert.Equal(t, "Ceiling fan wobbles", got.MaintenanceRequestIssue)
	assert.Equal(t, *tn.TenantRoomID, got.MaintenanceRequestRoomID)
	assert.Equal(t, mrModel.MaintenanceOpen, got.MaintenanceRequestStatus)
	require.NotNil(t, got.MaintenanceRequestTenantName)
	assert.Equal(t, "Lata", *got.MaintenanceRequestTenantName)
}

func TestSubmitMaintenance_WhitespaceIssueInsertsNothing(t *testing.T) {
	app, db, _ := setup(t)
	tn := seedTenant(t, db, "Lata", "5")

	resp := postJSON(t, app, "/api/public/portal/maintenance-requests", fiber.Map{
		"tenant_id": tn.TenantID.String(),
		"issue":     " \t\n ",
	})
	env := decode[any](t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Errors, "issue")

	var n int64
	require.NoError(t, db.Model(&mrModel.MaintenanceRequestModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
