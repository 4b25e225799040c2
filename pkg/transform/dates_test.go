package transform

import "testing"

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"current with no end", "2022-01-01", "", true, "2022—Present"},
		{"closed range", "2020-01-01", "2021-06-01", false, "2020—2021"},
		{"start only", "2023-01-01", "", false, "2023"},
		{"current wins over end date", "2019-03-01", "2020-01-01", true, "2019—Present"},
		{"empty start", "", "2021-01-01", false, ""},
		{"unparseable end keeps start", "2020-01-01", "someday", false, "2020"},
		{"rfc3339 timestamps", "2018-05-01T00:00:00Z", "2019-09-01T00:00:00Z", false, "2018—2019"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDateRange(tc.start, tc.end, tc.current); got != tc.want {
				t.Errorf("FormatDateRange(%q, %q, %v) = %q, want %q",
					tc.start, tc.end, tc.current, got, tc.want)
			}
		})
	}
}
