package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github-activity-feed/pkg/response"
)

func TestDisplayTimeMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"after midnight", time.Date(2026, 2, 22, 0, 45, 0, 0, time.UTC), `"22 Feb 2026 • 12:45 AM"`},
		{"afternoon", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"01 May 2024 • 03:30 PM"`},
		{"noon", time.Date(2024, 12, 9, 12, 5, 0, 0, time.UTC), `"09 Dec 2024 • 12:05 PM"`},
		{"non-UTC input is shown in UTC", time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("X", 2*3600)), `"01 May 2024 • 08:00 AM"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DisplayTime(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling DisplayTime: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
