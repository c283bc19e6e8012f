package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDay(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlapsRange(t *testing.T) {
	b := &Booking{
		CheckIn:  mustDay("2026-01-10"),
		CheckOut: mustDay("2026-01-15"),
	}

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"trùng hoàn toàn", "2026-01-10", "2026-01-15", true},
		{"trùng một phần đầu", "2026-01-08", "2026-01-11", true},
		{"trùng một phần cuối", "2026-01-14", "2026-01-18", true},
		{"bao trọn", "2026-01-01", "2026-01-31", true},
		{"nằm trong", "2026-01-11", "2026-01-13", true},
		{"nhận đúng ngày trả", "2026-01-15", "2026-01-20", false},
		{"trả đúng ngày nhận", "2026-01-05", "2026-01-10", false},
		{"hoàn toàn trước", "2026-01-01", "2026-01-05", false},
		{"hoàn toàn sau", "2026-01-20", "2026-01-25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.OverlapsRange(mustDay(tt.from), mustDay(tt.to)))
		})
	}
}

func TestValidateStatus(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed, PaymentStatus: PaymentStatusPaid}
	assert.NoError(t, b.ValidateStatus())

	b.Status = "Sleeping"
	assert.Error(t, b.ValidateStatus())

	b.Status = BookingStatusCancelled
	b.PaymentStatus = "Maybe"
	assert.Error(t, b.ValidateStatus())
}

func TestRoomTypeAmenityLookup(t *testing.T) {
	room := &RoomType{
		Amenities: AmenityList{
			{Name: "Wifi", Price: 0},
			{Name: "Late Checkout", Price: 300},
		},
	}

	a := room.Amenity("Late Checkout")
	assert.NotNil(t, a)
	assert.Equal(t, 300.0, a.Price)

	assert.Nil(t, room.Amenity("Helipad"))
}

func TestValidateCapacity(t *testing.T) {
	room := &RoomType{BaseCapacity: 2, MaxOccupancy: 4, TotalStock: 3}
	assert.NoError(t, room.ValidateCapacity())

	room.BaseCapacity = 5
	assert.Error(t, room.ValidateCapacity())

	room.BaseCapacity = 2
	room.TotalStock = -1
	assert.Error(t, room.ValidateCapacity())
}
