package availability

import (
	"testing"

	"lavanderia-service/internal/app/models"
	"lavanderia-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func reservationAt(timeOfDay string) models.Reservation {
	return models.Reservation{
		DateKey:   "2025-11-22",
		Time:      timeOfDay,
		UserName:  "Usuario WhatsApp",
		UserPhone: "5215512345678",
	}
}

func TestIsOperational(t *testing.T) {
	cases := []struct {
		timeOfDay string
		minutes   int
		valid     bool
	}{
		{"08:59", 8*60 + 59, false},
		{"09:00", 9 * 60, true},
		{"19:59", 19*60 + 59, true},
		{"20:00", 20 * 60, false},
		{"00:00", 0, false},
		{"23:59", 23*60 + 59, false},
	}
	for _, tc := range cases {
		t.Run(tc.timeOfDay, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsOperational(tc.minutes))
		})
	}
}

func TestCheckAvailability(t *testing.T) {
	t.Run("empty day is available", func(t *testing.T) {
		result := CheckAvailability(nil, 15*60)
		assert.True(t, result.Available)
		assert.Nil(t, result.Conflict)
	})

	t.Run("overlap inside an existing slot conflicts", func(t *testing.T) {
		existing := []models.Reservation{reservationAt("15:00")}

		result := CheckAvailability(existing, 15*60+30)
		assert.False(t, result.Available)
		assert.Equal(t, "15:00", result.Conflict.Time)
		assert.Equal(t, "16:00", result.NextAvailable)
	})

	t.Run("back-to-back start is not a conflict", func(t *testing.T) {
		existing := []models.Reservation{reservationAt("15:00")}

		result := CheckAvailability(existing, 16*60)
		assert.True(t, result.Available)
	})

	t.Run("request ending exactly at an existing start is not a conflict", func(t *testing.T) {
		existing := []models.Reservation{reservationAt("15:00")}

		result := CheckAvailability(existing, 14*60)
		assert.True(t, result.Available)
	})

	t.Run("first conflict in iteration order wins", func(t *testing.T) {
		existing := []models.Reservation{
			reservationAt("16:00"),
			reservationAt("15:30"),
		}

		// 15:45 overlaps both; the scan stops at the 16:00 row
		result := CheckAvailability(existing, 15*60+45)
		assert.False(t, result.Available)
		assert.Equal(t, "16:00", result.Conflict.Time)
		assert.Equal(t, "17:00", result.NextAvailable)
	})

	t.Run("rows with malformed times are skipped", func(t *testing.T) {
		existing := []models.Reservation{
			reservationAt("bogus"),
			reservationAt("15:00"),
		}

		result := CheckAvailability(existing, 15*60)
		assert.False(t, result.Available)
		assert.Equal(t, "15:00", result.Conflict.Time)
	})
}

func TestBuildDaySchedule(t *testing.T) {
	t.Run("no reservations yields empty sequences", func(t *testing.T) {
		schedule := BuildDaySchedule("2025-11-22", nil)
		assert.Equal(t, "2025-11-22", schedule.Date)
		assert.Empty(t, schedule.Available)
		assert.Empty(t, schedule.Occupied)
	})

	t.Run("occupied slots partition the window chronologically", func(t *testing.T) {
		schedule := BuildDaySchedule("2025-11-22", []models.Reservation{
			reservationAt("15:00"),
			reservationAt("10:00"),
		})

		assert.Equal(t, []responses.TimeInterval{
			{Start: "10:00", End: "11:00"},
			{Start: "15:00", End: "16:00"},
		}, schedule.Occupied)
		assert.Equal(t, []responses.TimeInterval{
			{Start: "09:00", End: "10:00"},
			{Start: "11:00", End: "15:00"},
			{Start: "16:00", End: "20:00"},
		}, schedule.Available)
	})

	t.Run("slot at opening leaves no leading gap", func(t *testing.T) {
		schedule := BuildDaySchedule("2025-11-22", []models.Reservation{reservationAt("09:00")})

		assert.Equal(t, []responses.TimeInterval{
			{Start: "10:00", End: "20:00"},
		}, schedule.Available)
	})

	t.Run("slot ending past closing truncates the free set", func(t *testing.T) {
		schedule := BuildDaySchedule("2025-11-22", []models.Reservation{reservationAt("19:30")})

		assert.Equal(t, []responses.TimeInterval{
			{Start: "19:30", End: "20:30"},
		}, schedule.Occupied)
		assert.Equal(t, []responses.TimeInterval{
			{Start: "09:00", End: "19:30"},
		}, schedule.Available)
	})

	t.Run("overlapping double bookings do not produce negative gaps", func(t *testing.T) {
		schedule := BuildDaySchedule("2025-11-22", []models.Reservation{
			reservationAt("15:00"),
			reservationAt("15:30"),
		})

		assert.Equal(t, []responses.TimeInterval{
			{Start: "15:00", End: "16:00"},
			{Start: "15:30", End: "16:30"},
		}, schedule.Occupied)
		assert.Equal(t, []responses.TimeInterval{
			{Start: "09:00", End: "15:00"},
			{Start: "16:30", End: "20:00"},
		}, schedule.Available)
	})
}
