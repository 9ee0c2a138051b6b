package ranking

import (
	"strings"
	"time"
)

var dobLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"02/01/2006",
}

// ParseDOB parses a date of birth in any of the accepted layouts.
func ParseDOB(dob string) (time.Time, bool) {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return time.Time{}, false
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, dob); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AgeOn returns the whole years elapsed from dob to asOf. The second value is
// false when the date is missing, unparseable or after asOf.
func AgeOn(dob string, asOf time.Time) (int, bool) {
	born, ok := ParseDOB(dob)
	if !ok {
		return 0, false
	}
	by, bm, bd := born.Date()
	ny, nm, nd := asOf.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}
