package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kostku_backend/internals/configs"
)

/* =======================================================================
   Supabase Storage (REST)
======================================================================= */

type SupabaseStorage struct {
	ProjectURL string
	ServiceKey string
	Bucket     string
	HTTP       *http.Client
}

func NewSupabaseStorageFromEnv(bucket string) (*SupabaseStorage, error) {
	projectURL := strings.TrimRight(getEnv("SUPABASE_PROJECT_URL"), "/")
	key := getEnv("SUPABASE_SERVICE_ROLE_KEY")
	if projectURL == "" || key == "" {
		return nil, fmt.Errorf("SUPABASE_PROJECT_URL atau SUPABASE_SERVICE_ROLE_KEY belum diset")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("bucket kosong")
	}
	return &SupabaseStorage{
		ProjectURL: projectURL,
		ServiceKey: key,
		Bucket:     bucket,
		HTTP:       &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (s *SupabaseStorage) objectURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.ProjectURL, s.Bucket, escapePath(path))
}

func (s *SupabaseStorage) PublicURL(path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.ProjectURL, s.Bucket, escapePath(path))
}

func (s *SupabaseStorage) Upload(ctx context.Context, path, contentType string, data []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.objectURL(path), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	if err := s.do(req); err != nil {
		return fmt.Errorf("upload gagal: %w", err)
	}
	configs.Logger.WithField("path", path).Debug("📦 upload ke supabase sukses")
	return nil
}

func (s *SupabaseStorage) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	if err := s.do(req); err != nil {
		return fmt.Errorf("delete gagal: %w", err)
	}
	return nil
}

func (s *SupabaseStorage) do(req *http.Request) error {
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// escapePath: escape per segmen, slash dipertahankan.
func escapePath(p string) string {
	parts := strings.Split(strings.TrimLeft(p, "/"), "/")
	for i, s := range parts {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}
