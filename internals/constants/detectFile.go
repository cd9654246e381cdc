package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileTypeImage   = 6
	FileTypePDF     = 4
	FileTypeUnknown = 99
)

// MaxProofSize: batas ukuran bukti bayar (foto HP biasanya < 5MB)
const MaxProofSize = int64(10 * 1024 * 1024)

func DetectFileTypeFromExt(filename string) int {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FileTypePDF
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".heic":
		return FileTypeImage
	default:
		return FileTypeUnknown // Tidak diketahui
	}
}

// IsAllowedProofFile: bukti bayar hanya gambar atau PDF.
func IsAllowedProofFile(filename, contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if strings.HasPrefix(ct, "image/") || ct == "application/pdf" {
		return true
	}
	return DetectFileTypeFromExt(filename) != FileTypeUnknown
}

// ProofExt: ekstensi untuk object key, fallback "bin".
func ProofExt(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "bin"
	}
	return ext
}
