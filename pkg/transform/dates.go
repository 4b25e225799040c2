package transform

import (
	"strconv"
	"time"
)

// FormatDateRange renders an experience date span for display:
//
//	start only          -> "2023"
//	start and end       -> "2020—2021"
//	current engagement  -> "2022—Present"
//
// A current engagement always shows "Present", even when an end date is
// also set. Dates are ISO strings from the CMS; anything unparseable keeps
// its leading year digits, and an empty start yields an empty string.
func FormatDateRange(startDate, endDate string, current bool) string {
	start := yearOf(startDate)
	if start == "" {
		return ""
	}

	switch {
	case current:
		return start + "—Present"
	case endDate != "":
		end := yearOf(endDate)
		if end == "" {
			return start
		}
		return start + "—" + end
	default:
		return start
	}
}

func yearOf(date string) string {
	if date == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return strconv.Itoa(t.Year())
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return strconv.Itoa(t.Year())
	}
	// Last resort: a leading 4-digit year.
	if len(date) >= 4 {
		if _, err := strconv.Atoi(date[:4]); err == nil {
			return date[:4]
		}
	}
	return ""
}
