package builders

import (
	"encoding/json"
	"strings"
	"time"

	"arabella/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithRoom thêm loại phòng và gói giá
func (b *BookingBuilder) WithRoom(roomTypeID, ratePlanID uint) *BookingBuilder {
	b.booking.RoomTypeID = roomTypeID
	b.booking.RatePlanID = ratePlanID
	return b
}

// WithGuest thêm thông tin khách
func (b *BookingBuilder) WithGuest(firstName, lastName, email, phone, address string) *BookingBuilder {
	b.booking.GuestName = strings.TrimSpace(firstName + " " + lastName)
	b.booking.GuestEmail = email
	b.booking.GuestPhone = phone
	b.booking.GuestAddress = address
	return b
}

// WithStay thêm khoảng lưu trú và số khách
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time, nights, adults, children int) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	b.booking.Nights = nights
	b.booking.Adults = adults
	b.booking.Children = children
	return b
}

// WithAddons lưu danh sách tiện nghi đã chọn dưới dạng JSON
func (b *BookingBuilder) WithAddons(addons []string) *BookingBuilder {
	if len(addons) == 0 {
		return b
	}
	if data, err := json.Marshal(addons); err == nil {
		b.booking.Addons = data
	}
	return b
}

// WithFinancials chốt bảng giá tại thời điểm xác nhận
func (b *BookingBuilder) WithFinancials(baseRate, roomTotal, amenities, cityTax, discount, total float64) *BookingBuilder {
	b.booking.BaseRatePerNight = baseRate
	b.booking.RoomPriceTotal = roomTotal
	b.booking.AmenitiesCost = amenities
	b.booking.CityTax = cityTax
	b.booking.Discount = discount
	b.booking.TotalPrice = total
	return b
}

// WithPayment gắn định danh giao dịch của cổng thanh toán
func (b *BookingBuilder) WithPayment(orderID, paymentID, paymentStatus string) *BookingBuilder {
	b.booking.PaymentOrderID = orderID
	b.booking.PaymentID = paymentID
	b.booking.PaymentStatus = paymentStatus
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
