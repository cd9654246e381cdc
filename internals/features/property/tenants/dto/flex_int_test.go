package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt64(t *testing.T) {
	ok := map[string]int64{
		`5000`:     5000,
		`"5000"`:   5000,
		`" 750 "`:  750,
		`"5000.0"`: 5000,
		`1e3`:      1000,
		`null`:     0,
		`""`:       0,
	}
	for in, want := range ok {
		var f FlexInt64
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.Equal(t, want, int64(f), in)
	}

	for _, in := range []string{`5000.9`, `"5000.9"`, `"0.5"`, `"lima ribu"`, `1e300`} {
		var f FlexInt64
		assert.Error(t, json.Unmarshal([]byte(in), &f), in)
	}
}
