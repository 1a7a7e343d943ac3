package production

import (
	"fmt"
	"regexp"
	"time"
)

// DefaultLotCodePrefix prefixes every generated lot code.
const DefaultLotCodePrefix = "LC"

var lotCodePattern = regexp.MustCompile(`^[A-Z]+-(\d{8})-(\d{3,})$`)

// FormatLotCode renders a date-scoped lot code, e.g. "LC-20241201-003".
// The sequence is zero-padded to three digits and keeps growing past
// 999 without truncation, so codes stay unique within the day.
func FormatLotCode(prefix string, manufacturedOn time.Time, sequence int64) string {
	if prefix == "" {
		prefix = DefaultLotCodePrefix
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, manufacturedOn.Format("20060102"), sequence)
}

// IsLotCode reports whether s has the generated lot code shape.
func IsLotCode(s string) bool {
	return lotCodePattern.MatchString(s)
}

// LotCodeDate extracts the manufacture date embedded in a lot code.
func LotCodeDate(code string) (time.Time, error) {
	m := lotCodePattern.FindStringSubmatch(code)
	if m == nil {
		return time.Time{}, fmt.Errorf("malformed lot code %q", code)
	}
	return time.Parse("20060102", m[1])
}
