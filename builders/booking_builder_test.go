package builders

import (
	"testing"
	"time"

	"arabella/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingBuilder(t *testing.T) {
	checkIn := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	booking := NewBookingBuilder().
		WithRoom(1, 2).
		WithGuest("Lan", "Nguyen", "lan@example.com", "+84901234567", "Hà Nội").
		WithStay(checkIn, checkOut, 2, 2, 1).
		WithAddons([]string{"Late Checkout"}).
		WithFinancials(900, 2300, 600, 50, 180, 2350).
		WithPayment("order_ABC", "pay_XYZ", models.PaymentStatusPaid).
		WithStatus(models.BookingStatusConfirmed).
		Build()

	assert.Equal(t, uint(1), booking.RoomTypeID)
	assert.Equal(t, uint(2), booking.RatePlanID)
	assert.Equal(t, "Lan Nguyen", booking.GuestName)
	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, 2350.0, booking.TotalPrice)
	assert.Equal(t, models.PaymentStatusPaid, booking.PaymentStatus)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	require.NotEmpty(t, booking.Addons)
	assert.JSONEq(t, `["Late Checkout"]`, string(booking.Addons))
	assert.NoError(t, booking.ValidateStatus())
}

func TestBookingBuilderTrimsGuestName(t *testing.T) {
	booking := NewBookingBuilder().
		WithGuest("Lan", "", "lan@example.com", "", "").
		Build()

	assert.Equal(t, "Lan", booking.GuestName)
	assert.Empty(t, booking.Addons)
}
