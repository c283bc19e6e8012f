package services

import (
	"testing"
	"time"

	"arabella/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func bookingFor(roomID uint, checkIn, checkOut string) models.Booking {
	return models.Booking{
		RoomTypeID: roomID,
		CheckIn:    day(checkIn),
		CheckOut:   day(checkOut),
		Status:     models.BookingStatusConfirmed,
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(day("2026-01-10"), day("2026-01-11")))
	assert.Equal(t, 5, Nights(day("2026-01-10"), day("2026-01-15")))
	// Khoảng ngược vẫn clamp về 1, caller đã validate trước đó
	assert.Equal(t, 1, Nights(day("2026-01-10"), day("2026-01-10")))
}

func TestAvailableRoomsCountsOverlaps(t *testing.T) {
	rooms := []models.RoomType{
		{ID: 1, Name: "Deluxe Queen", TotalStock: 3},
		{ID: 2, Name: "Family Suite", TotalStock: 2},
	}
	bookings := []models.Booking{
		bookingFor(1, "2026-01-10", "2026-01-15"),
		bookingFor(1, "2026-01-12", "2026-01-14"),
		bookingFor(2, "2026-01-11", "2026-01-13"),
	}

	out := AvailableRooms(rooms, bookings, day("2026-01-10"), day("2026-01-15"))
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Remaining)
	assert.Equal(t, 1, out[1].Remaining)
}

func TestAvailableRoomsExcludesSoldOut(t *testing.T) {
	rooms := []models.RoomType{{ID: 1, Name: "Deluxe Queen", TotalStock: 3}}
	bookings := []models.Booking{
		bookingFor(1, "2026-01-10", "2026-01-15"),
		bookingFor(1, "2026-01-12", "2026-01-14"),
		bookingFor(1, "2026-01-13", "2026-01-16"),
	}

	out := AvailableRooms(rooms, bookings, day("2026-01-10"), day("2026-01-15"))
	assert.Empty(t, out)

	// Booking thứ 4 nằm ngoài khoảng hỏi thì không đổi kết quả
	bookings = append(bookings, bookingFor(1, "2026-02-01", "2026-02-05"))
	out = AvailableRooms(rooms, bookings, day("2026-02-10"), day("2026-02-12"))
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Remaining)
}

func TestAvailableRoomsHalfOpenBoundaries(t *testing.T) {
	rooms := []models.RoomType{{ID: 1, Name: "Deluxe Queen", TotalStock: 1}}
	checkIn, checkOut := day("2026-01-10"), day("2026-01-15")

	// Trùng một phần: chiếm phòng
	out := AvailableRooms(rooms, []models.Booking{bookingFor(1, "2026-01-14", "2026-01-16")}, checkIn, checkOut)
	assert.Empty(t, out)

	// Nhận phòng đúng ngày khách cũ trả: không trùng
	out = AvailableRooms(rooms, []models.Booking{bookingFor(1, "2026-01-15", "2026-01-20")}, checkIn, checkOut)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Remaining)

	// Trả phòng đúng ngày khách mới nhận: không trùng
	out = AvailableRooms(rooms, []models.Booking{bookingFor(1, "2026-01-01", "2026-01-10")}, checkIn, checkOut)
	require.Len(t, out, 1)
}

func TestAvailableRoomsSkipsCancelled(t *testing.T) {
	rooms := []models.RoomType{{ID: 1, Name: "Deluxe Queen", TotalStock: 1}}
	cancelled := bookingFor(1, "2026-01-10", "2026-01-15")
	cancelled.Status = models.BookingStatusCancelled

	out := AvailableRooms(rooms, []models.Booking{cancelled}, day("2026-01-10"), day("2026-01-15"))
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Remaining)
}
