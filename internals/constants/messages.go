package constants

import "fmt"

// Pesan sukses statis untuk form portal penyewa
const (
	MsgPaymentProofSubmitted       = "Payment proof submitted successfully."
	MsgMaintenanceRequestSubmitted = "Maintenance request submitted successfully."
)

const (
	ErrTenantNotFound   = "❌ Tenant %s tidak ditemukan."
	ErrTenantHasNoRoom  = "❌ Tenant %s belum punya kamar."
	ErrRoomNotFound     = "❌ Kamar %s tidak ditemukan."
	ErrInvalidMonthText = "❌ Format month tidak valid (YYYY-MM atau YYYY-MM-DD)."
)

func TenantNotFound(id string) string  { return fmt.Sprintf(ErrTenantNotFound, id) }
func TenantHasNoRoom(id string) string { return fmt.Sprintf(ErrTenantHasNoRoom, id) }
func RoomNotFound(id string) string    { return fmt.Sprintf(ErrRoomNotFound, id) }
