package dto

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt64 menerima angka JSON maupun string angka ("5000").
// null / "" → 0. Pecahan ("5000.9") ditolak, "5000.0" tetap diterima.
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// "5000.0" dari input number di browser
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("bukan angka: %q", s)
		}
		if fl != math.Trunc(fl) || math.IsInf(fl, 0) || fl > math.MaxInt64 || fl < math.MinInt64 {
			return fmt.Errorf("harus bilangan bulat: %q", s)
		}
		n = int64(fl)
	}
	*f = FlexInt64(n)
	return nil
}
