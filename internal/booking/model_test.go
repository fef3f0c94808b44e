package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{
			name:   "Identical ranges overlap",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 12),
			bStart: date(2026, 9, 10), bEnd: date(2026, 9, 12),
			want: true,
		},
		{
			name:   "Partial overlap at the end",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 14),
			bStart: date(2026, 9, 12), bEnd: date(2026, 9, 16),
			want: true,
		},
		{
			name:   "Contained range overlaps",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 20),
			bStart: date(2026, 9, 12), bEnd: date(2026, 9, 14),
			want: true,
		},
		{
			name:   "Checkout day equals checkin day, no conflict",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 12),
			bStart: date(2026, 9, 12), bEnd: date(2026, 9, 14),
			want: false,
		},
		{
			name:   "Checkin day equals checkout day, no conflict",
			aStart: date(2026, 9, 12), aEnd: date(2026, 9, 14),
			bStart: date(2026, 9, 10), bEnd: date(2026, 9, 12),
			want: false,
		},
		{
			name:   "Fully disjoint ranges",
			aStart: date(2026, 9, 1), aEnd: date(2026, 9, 3),
			bStart: date(2026, 9, 10), bEnd: date(2026, 9, 12),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// The relation is symmetric.
			assert.Equal(t, tt.want, overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"Two full nights", date(2026, 9, 10), date(2026, 9, 12), 2},
		{"Single night", date(2026, 9, 10), date(2026, 9, 11), 1},
		{"Partial day rounds up", date(2026, 9, 10), time.Date(2026, 9, 11, 15, 0, 0, 0, time.UTC), 2},
		{"Sub-day stay still bills one night", time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), time.Date(2026, 9, 10, 20, 0, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalAmount(t *testing.T) {
	rooms := []SelectedRoom{
		{RoomNumber: "101", Price: 500},
		{RoomNumber: "102", Price: 700},
	}

	// 3 nights x (500 + 700)
	assert.Equal(t, 3600.0, TotalAmount(3, rooms))
	assert.Equal(t, 0.0, TotalAmount(2, nil))
}
