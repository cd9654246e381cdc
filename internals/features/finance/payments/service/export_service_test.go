package service

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kostku_backend/internals/features/finance/payments/model"
	"kostku_backend/internals/helpers/dbtime"
)

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "Ten thousand", AmountInWords(10000))
	assert.Equal(t, "Zero", AmountInWords(0))
}

func TestBuildLedgerXLSX(t *testing.T) {
	name := "Asha"
	room := "101"
	rows := []LedgerRow{
		{
			PaymentID:       uuid.New(),
			PaymentTenantID: uuid.New(),
			PaymentMonth:    dbtime.ToDate(may2024),
			PaymentAmount:   10000,
			PaymentStatus:   model.PaymentPaid,
			TenantName:      &name,
			RoomNumber:      &room,
		},
		{
			PaymentID:       uuid.New(),
			PaymentTenantID: uuid.New(),
			PaymentMonth:    dbtime.ToDate(may2024),
			PaymentAmount:   10000,
			PaymentStatus:   model.PaymentPending,
		},
	}

	data, err := BuildLedgerXLSX(may2024, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(ledgerSheet)
	require.NoError(t, err)
	require.Len(t, got, 4) // header + 2 baris + total

	assert.Equal(t, ledgerHeaders[0], got[0][0])
	assert.Equal(t, []string{"Asha", "101", "2024-05-01", "10000", "Ten thousand", "paid"}, got[1][:6])
	assert.Equal(t, "(deleted tenant)", got[2][0])
	assert.Equal(t, "Vacant", got[2][1])
	assert.Equal(t, "Total", got[3][2])
	assert.Equal(t, "20000", got[3][3])
	assert.Equal(t, "Twenty thousand", got[3][4])

	assert.Equal(t, "payments_2024-05.xlsx", ExportFilename(may2024))
}

func TestWriteLedger_ReturnsCellError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := writeLedger(f, "Missing", may2024, []LedgerRow{{PaymentAmount: 10000}})
	require.Error(t, err)

	// sheet yang ada tetap kosong, tidak ada tulisan setengah jadi
	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSheetWriter_KeepsFirstError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{f: f, sheet: "Sheet1"}
	w.set("A", 1, "ok")
	require.NoError(t, w.err)

	w.set("A", 0, "baris nol") // koordinat tidak valid
	first := w.err
	require.Error(t, first)

	w.set("B", 1, "diabaikan")
	w.width("B", 10)
	assert.Equal(t, first, w.err)

	v, err := f.GetCellValue("Sheet1", "B1")
	require.NoError(t, err)
	assert.Empty(t, v)
}
