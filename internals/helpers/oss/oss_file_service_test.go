package helper

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestConvertToWebP_Downscale(t *testing.T) {
	data := pngBytes(t, 400, 200)
	require.True(t, IsConvertibleImage(data))

	out, err := ConvertToWebP(data, "bukti.png", WebPOptions{MaxW: 100, MaxH: 100, Quality: 70})
	require.NoError(t, err)

	img, err := decodeImage(out, "bukti.webp")
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestIsConvertibleImage_PDF(t *testing.T) {
	assert.False(t, IsConvertibleImage([]byte("%PDF-1.4\n%âãÏÓ\n1 0 obj")))
}

func TestSupabaseBlobService(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotAuth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("SUPABASE_PROJECT_URL", srv.URL)
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "secret")

	svc, err := NewBlobServiceFromEnv("supabase", "payment-proofs")
	require.NoError(t, err)

	url, key, err := svc.Upload(context.Background(), "room-1/2024-05_1700000000000.pdf", []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "room-1/2024-05_1700000000000.pdf", key)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/payment-proofs/room-1/2024-05_1700000000000.pdf", url)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/storage/v1/object/payment-proofs/room-1/2024-05_1700000000000.pdf", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)

	require.NoError(t, svc.Delete(context.Background(), key))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestNewBlobServiceFromEnv_UnknownDriver(t *testing.T) {
	_, err := NewBlobServiceFromEnv("ftp", "x")
	assert.Error(t, err)
}
