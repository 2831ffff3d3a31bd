package scanner

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// -----------------------------------------------------------------------------
// Tolerant JSON numbers
// -----------------------------------------------------------------------------

// flexFloat decodes a JSON number, a string-encoded number, null, or an
// absent field to a float64, coercing anything unusable to 0. Decoding
// never fails: a malformed upstream payload must degrade to defaults
// instead of aborting the whole response.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	*f = 0

	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*f = flexFloat(sanitize(v))
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*f = flexFloat(sanitize(v))
	}
	return nil
}

// -----------------------------------------------------------------------------

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
