package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestRoomCost(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		checkin  string
		checkout string
		want     float64
	}{
		{"two day stay", 150, "2026-09-10", "2026-09-12", 300},
		{"single day stay", 100, "2026-09-10", "2026-09-11", 100},
		{"same day floors to one day", 100, "2026-09-10", "2026-09-10", 100},
		{"week long vip stay", 500, "2026-09-01", "2026-09-08", 3500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoomCost(tt.rate, date(tt.checkin), date(tt.checkout))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStayDays(t *testing.T) {
	assert.Equal(t, 2, StayDays(date("2026-09-10"), date("2026-09-12")))
	assert.Equal(t, 1, StayDays(date("2026-09-10"), date("2026-09-10")))
}

func TestAmbulanceCost(t *testing.T) {
	assert.Equal(t, 100.0, AmbulanceCost(50, 5, 10))
	assert.Equal(t, 50.0, AmbulanceCost(50, 5, 0))

	// Recomputing with the same inputs yields the same total
	first := AmbulanceCost(75, 12.5, 8)
	second := AmbulanceCost(75, 12.5, 8)
	assert.Equal(t, first, second)
}
