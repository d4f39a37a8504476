package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 30, hour, minute, 0, 0, time.UTC)
}

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "", wantErr: true},
		{in: "garbage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHHMM(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHHMM)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinQuietHours(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		start string
		end   string
		want  bool
	}{
		{name: "inside plain window", now: at(12, 0), start: "09:00", end: "17:00", want: true},
		{name: "at window start", now: at(9, 0), start: "09:00", end: "17:00", want: true},
		{name: "at window end is outside", now: at(17, 0), start: "09:00", end: "17:00", want: false},
		{name: "before window", now: at(8, 59), start: "09:00", end: "17:00", want: false},
		{name: "wrap window late evening", now: at(23, 0), start: "22:00", end: "07:00", want: true},
		{name: "wrap window early morning", now: at(6, 59), start: "22:00", end: "07:00", want: true},
		{name: "wrap window daytime", now: at(12, 0), start: "22:00", end: "07:00", want: false},
		{name: "wrap window at end is outside", now: at(7, 0), start: "22:00", end: "07:00", want: false},
		{name: "equal bounds empty window", now: at(9, 0), start: "09:00", end: "09:00", want: false},
		{name: "invalid start disables window", now: at(12, 0), start: "9am", end: "17:00", want: false},
		{name: "empty bounds disable window", now: at(12, 0), start: "", end: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinQuietHours(tt.now, tt.start, tt.end))
		})
	}
}

func TestLocalYMD(t *testing.T) {
	// 2026-08-30 01:30 UTC is still 2026-08-29 in New York.
	now := time.Date(2026, 8, 30, 1, 30, 0, 0, time.UTC)

	ny := LocalYMD(now, "America/New_York")
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), ny)

	// Same instant is already 2026-08-30 in Bangkok.
	bkk := LocalYMD(now, "Asia/Bangkok")
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), bkk)

	// Unknown timezone falls back to UTC.
	utc := LocalYMD(now, "Not/AZone")
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), utc)
}

func TestNowInTZ(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	bkk := NowInTZ(now, "Asia/Bangkok")
	assert.Equal(t, 19, bkk.Hour())

	fallback := NowInTZ(now, "")
	assert.Equal(t, 12, fallback.Hour())
}

func TestClampHour(t *testing.T) {
	assert.Equal(t, 0, ClampHour(0, 9))
	assert.Equal(t, 23, ClampHour(23, 9))
	assert.Equal(t, 9, ClampHour(-1, 9))
	assert.Equal(t, 9, ClampHour(24, 9))
}
