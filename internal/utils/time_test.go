package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone America/New_York", timezone: "America/New_York", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestDayKey(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}

	tests := []struct {
		name string
		t    time.Time
		loc  *time.Location
		want string
	}{
		{
			name: "late evening in New York is still the same local day",
			t:    time.Date(2024, 1, 2, 3, 30, 0, 0, time.UTC),
			loc:  ny,
			want: "2024-01-01",
		},
		{
			name: "exact local midnight belongs to the new day",
			t:    time.Date(2024, 3, 10, 0, 0, 0, 0, ny),
			loc:  ny,
			want: "2024-03-10",
		},
		{
			name: "utc bucketing",
			t:    time.Date(2024, 1, 2, 3, 30, 0, 0, time.UTC),
			loc:  time.UTC,
			want: "2024-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.t, tt.loc); got != tt.want {
				t.Errorf("DayKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		day  string
		n    int
		want string
	}{
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-03-10", 1, "2024-03-11"}, // US DST start
		{"2024-11-03", -1, "2024-11-02"}, // US DST end
	}

	for _, tt := range tests {
		got, err := AddDays(tt.day, tt.n)
		if err != nil {
			t.Fatalf("AddDays(%q, %d) error: %v", tt.day, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tt.day, tt.n, got, tt.want)
		}
	}

	if _, err := AddDays("01/02/2024", 1); err == nil {
		t.Error("expected error for malformed day")
	}
}

func TestDayRange(t *testing.T) {
	days, err := DayRange("2024-02-27", "2024-03-01")
	if err != nil {
		t.Fatalf("DayRange error: %v", err)
	}
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}
	if len(days) != len(want) {
		t.Fatalf("DayRange returned %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %q, want %q", i, days[i], want[i])
		}
	}

	empty, err := DayRange("2024-03-02", "2024-03-01")
	if err != nil {
		t.Fatalf("DayRange error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no days for reversed range, got %v", empty)
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("Local") || !ValidateTimezone("") || !ValidateTimezone("UTC") {
		t.Error("expected Local, empty and UTC to be valid")
	}
	if ValidateTimezone("Mars/Olympus") {
		t.Error("expected invalid timezone to fail")
	}
}

func TestValidateDay(t *testing.T) {
	if !ValidateDay("2024-01-31") {
		t.Error("expected valid day")
	}
	if ValidateDay("2024-02-30") || ValidateDay("yesterday") {
		t.Error("expected invalid day")
	}
}
