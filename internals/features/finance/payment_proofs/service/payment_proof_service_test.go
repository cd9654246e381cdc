package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostku_backend/internals/databases/dbtest"
	"kostku_backend/internals/features/finance/payment_proofs/model"
	"kostku_backend/internals/helpers/dbtime"
)

func TestListForMonth_NewestFirst(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	may := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	base := time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC)

	for i, url := range []string{"first", "second", "third"} {
		require.NoError(t, Create(ctx, db, &model.PaymentProofModel{
			PaymentProofTenantName: "Asha",
			PaymentProofRoomID:     uuid.New(),
			PaymentProofMonth:      dbtime.ToDate(may),
			PaymentProofFileURL:    url,
			PaymentProofCreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}))
	}
	// bulan lain tidak ikut
	require.NoError(t, Create(ctx, db, &model.PaymentProofModel{
		PaymentProofTenantName: "Asha",
		PaymentProofRoomID:     uuid.New(),
		PaymentProofMonth:      dbtime.ToDate(may.AddDate(0, 1, 0)),
		PaymentProofFileURL:    "june",
	}))

	rows, total, err := ListForMonth(ctx, db, may, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "third", rows[0].PaymentProofFileURL)
	assert.Equal(t, "second", rows[1].PaymentProofFileURL)
}
