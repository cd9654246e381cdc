package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/xuri/excelize/v2"

	"kostku_backend/internals/helpers/dbtime"
)

const ledgerSheet = "Payments"

var ledgerHeaders = []string{
	"Tenant", "Room", "Month", "Amount", "Amount (words)", "Status", "Paid At", "Proof URL",
}

// AmountInWords: 10000 → "Ten thousand".
func AmountInWords(amount int64) string {
	w := num2words.Convert(int(amount))
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// BuildLedgerXLSX → bytes file .xlsx untuk ledger satu bulan.
func BuildLedgerXLSX(month time.Time, rows []LedgerRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// sheet default langsung di-rename
	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return nil, err
	}
	if err := writeLedger(f, ledgerSheet, month, rows); err != nil {
		return nil, fmt.Errorf("tulis ledger: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetWriter menyimpan error pertama; set berikutnya jadi no-op.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col string, row int, v any) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, fmt.Sprintf("%s%d", col, row), v)
}

func (w *sheetWriter) width(col string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.sheet, col, col, width)
}

func writeLedger(f *excelize.File, sheet string, month time.Time, rows []LedgerRow) error {
	w := &sheetWriter{f: f, sheet: sheet}

	for i, h := range ledgerHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		w.set(col, 1, h)
	}
	if w.err != nil {
		return w.err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return err
	}

	monthLabel := dbtime.FormatMonth(month)
	var total int64
	for i, r := range rows {
		row := i + 2
		tenant := "(deleted tenant)"
		if r.TenantName != nil {
			tenant = *r.TenantName
		}
		room := "Vacant"
		if r.RoomNumber != nil {
			room = *r.RoomNumber
		}
		paidAt := ""
		if r.PaymentPaidAt != nil {
			paidAt = r.PaymentPaidAt.Format("2006-01-02 15:04")
		}
		proof := ""
		if r.Proof != nil {
			proof = r.Proof.PaymentProofFileURL
		}

		w.set("A", row, tenant)
		w.set("B", row, room)
		w.set("C", row, monthLabel)
		w.set("D", row, r.PaymentAmount)
		w.set("E", row, AmountInWords(r.PaymentAmount))
		w.set("F", row, string(r.PaymentStatus))
		w.set("G", row, paidAt)
		w.set("H", row, proof)
		total += r.PaymentAmount
	}

	// baris total
	totalRow := len(rows) + 2
	w.set("C", totalRow, "Total")
	w.set("D", totalRow, total)
	w.set("E", totalRow, AmountInWords(total))

	w.width("A", 24)
	w.width("E", 36)
	w.width("H", 60)
	return w.err
}

func ExportFilename(month time.Time) string {
	return fmt.Sprintf("payments_%s.xlsx", dbtime.MonthKey(month))
}
