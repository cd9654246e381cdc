package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Key yang dikembalikan Upload adalah key final di storage (sudah termasuk
prefix), jadi bisa langsung disimpan di DB dan dipakai lagi untuk Delete.
*/
type BlobService interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (publicURL, objectKey string, err error)
	Delete(ctx context.Context, objectKey string) error
}

// --------------------------------------------------
// Aliyun OSS
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) Upload(ctx context.Context, path string, data []byte, contentType string) (string, string, error) {
	key := b.svc.ObjectKey(path)
	if err := b.svc.UploadStream(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), key, nil
}

func (b *OSSBlobService) Delete(ctx context.Context, objectKey string) error {
	if strings.TrimSpace(objectKey) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "key kosong")
	}
	if err := b.svc.DeleteObject(ctx, objectKey); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal hapus object: %v", err))
	}
	return nil
}

// --------------------------------------------------
// Supabase Storage
// --------------------------------------------------

type SupabaseBlobService struct {
	st *SupabaseStorage
}

func NewSupabaseBlobServiceFromEnv(bucket string) (*SupabaseBlobService, error) {
	st, err := NewSupabaseStorageFromEnv(bucket)
	if err != nil {
		return nil, err
	}
	return &SupabaseBlobService{st: st}, nil
}

func (b *SupabaseBlobService) Upload(ctx context.Context, path string, data []byte, contentType string) (string, string, error) {
	path = strings.TrimLeft(path, "/")
	if err := b.st.Upload(ctx, path, contentType, data); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke storage")
	}
	return b.st.PublicURL(path), path, nil
}

func (b *SupabaseBlobService) Delete(ctx context.Context, objectKey string) error {
	if strings.TrimSpace(objectKey) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "key kosong")
	}
	if err := b.st.Delete(ctx, objectKey); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal hapus object: %v", err))
	}
	return nil
}

// NewBlobServiceFromEnv memilih driver dari STORAGE_DRIVER (oss | supabase).
// bucket: nama bucket supabase, atau prefix key untuk OSS.
func NewBlobServiceFromEnv(driver, bucket string) (BlobService, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "oss":
		return NewOSSBlobServiceFromEnv(bucket)
	case "supabase":
		return NewSupabaseBlobServiceFromEnv(bucket)
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER tidak dikenal: %q", driver)
	}
}

// --------------------------------------------------
// Helper kecil untuk controller
// --------------------------------------------------

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// GetFormFile mencari file dari beberapa kemungkinan field form.
// Jika tidak ada file, kembalikan (nil, nil).
func GetFormFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gunakan multipart/form-data")
	}
	if len(fieldNames) == 0 {
		fieldNames = []string{"file", "image", "proof"}
	}
	for _, fn := range fieldNames {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

// PreparedFile: isi file siap upload.
type PreparedFile struct {
	Data        []byte
	ContentType string
	Ext         string // tanpa titik
}

// ReadFormFile membaca file (maks maxSize byte). Jika toWebP=true dan file
// berupa jpeg/png, isi di-reencode ke WebP.
func ReadFormFile(fh *multipart.FileHeader, maxSize int64, ext string, toWebP bool) (*PreparedFile, error) {
	if fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if maxSize > 0 && fh.Size > maxSize {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("Ukuran file maksimal %d MB", maxSize/(1024*1024)))
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file")
	}
	if len(data) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File kosong")
	}

	out := &PreparedFile{
		Data:        data,
		ContentType: strings.TrimSpace(fh.Header.Get(fiber.HeaderContentType)),
		Ext:         ext,
	}
	if out.ContentType == "" || out.ContentType == "application/octet-stream" {
		out.ContentType = http.DetectContentType(data[:min(len(data), 512)])
	}

	if toWebP && IsConvertibleImage(data) {
		webpData, err := ConvertToWebP(data, fh.Filename, DefaultWebPOptionsFromEnv())
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Gagal konversi gambar ke WebP")
		}
		out.Data = webpData
		out.ContentType = "image/webp"
		out.Ext = "webp"
	}
	return out, nil
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockBlobService struct {
	UploadFn func(ctx context.Context, path string, data []byte, contentType string) (string, string, error)
	DeleteFn func(ctx context.Context, objectKey string) error
}

func (m *MockBlobService) Upload(ctx context.Context, path string, data []byte, contentType string) (string, string, error) {
	if m.UploadFn == nil {
		return "", "", errors.New("not implemented")
	}
	return m.UploadFn(ctx, path, data, contentType)
}

func (m *MockBlobService) Delete(ctx context.Context, objectKey string) error {
	if m.DeleteFn == nil {
		return errors.New("not implemented")
	}
	return m.DeleteFn(ctx, objectKey)
}
